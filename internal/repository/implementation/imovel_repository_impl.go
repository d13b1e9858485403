package implementation

import (
	"context"
	"errors"

	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/mapper"
	"imobiliaria-crm-be/internal/model"
	"imobiliaria-crm-be/internal/repository/contract"
	"imobiliaria-crm-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImovelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ImovelMapper
}

func NewImovelRepository(db *gorm.DB) contract.ImovelRepository {
	return &ImovelRepositoryImpl{
		db:     db,
		mapper: mapper.NewImovelMapper(),
	}
}

// Create inserts the row without letting GORM touch the association tables,
// then writes the feature join rows for the resolved set carried on the
// entity.
func (r *ImovelRepositoryImpl) Create(ctx context.Context, imovel *entity.Imovel) error {
	m := r.mapper.ToModel(imovel)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		if len(m.Caracteristicas) > 0 {
			return tx.Model(m).Association("Caracteristicas").Replace(m.Caracteristicas)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, m.Id, imovel)
}

// Update overwrites every scalar column (Save writes all fields, so a nil
// CorretorId clears the broker reference) and replaces the feature join rows
// with the entity's current set.
func (r *ImovelRepositoryImpl) Update(ctx context.Context, imovel *entity.Imovel) error {
	m := r.mapper.ToModel(imovel)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(m).Error; err != nil {
			return err
		}
		return tx.Model(m).Association("Caracteristicas").Replace(m.Caracteristicas)
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, m.Id, imovel)
}

func (r *ImovelRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Imovel{}, id).Error
}

func (r *ImovelRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Imovel, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ImovelRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Imovel, error) {
	var models []*model.Imovel
	query := r.preloaded(ctx).Order("id ASC")
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ImovelRepositoryImpl) FindByCodigo(ctx context.Context, codigo string) (*entity.Imovel, error) {
	return r.findOne(ctx, specification.Filter("codigo", codigo))
}

func (r *ImovelRepositoryImpl) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Imovel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ImovelRepositoryImpl) ClearCaracteristicas(ctx context.Context, imovelID uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Imovel{Id: imovelID}).
		Association("Caracteristicas").
		Clear()
}

func (r *ImovelRepositoryImpl) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Corretor").
		Preload("Caracteristicas").
		Preload("Imagens", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordem ASC, id ASC")
		})
}

func (r *ImovelRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Imovel, error) {
	var m model.Imovel
	query := applySpecifications(r.preloaded(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ImovelRepositoryImpl) reload(ctx context.Context, id uint, dst *entity.Imovel) error {
	loaded, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if loaded != nil {
		*dst = *loaded
	}
	return nil
}
