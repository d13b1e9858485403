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
)

type CaracteristicaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaracteristicaMapper
}

func NewCaracteristicaRepository(db *gorm.DB) contract.CaracteristicaRepository {
	return &CaracteristicaRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaracteristicaMapper(),
	}
}

func (r *CaracteristicaRepositoryImpl) Create(ctx context.Context, caracteristica *entity.Caracteristica) error {
	m := r.mapper.ToModel(caracteristica)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*caracteristica = *r.mapper.ToEntity(m)
	return nil
}

func (r *CaracteristicaRepositoryImpl) Update(ctx context.Context, caracteristica *entity.Caracteristica) error {
	m := r.mapper.ToModel(caracteristica)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*caracteristica = *r.mapper.ToEntity(m)
	return nil
}

// Delete removes the join rows explicitly in the same transaction as the tag
// row, instead of leaning on a database-level cascade.
func (r *CaracteristicaRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM imovel_caracteristicas WHERE caracteristica_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Caracteristica{}, id).Error
	})
}

func (r *CaracteristicaRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Caracteristica, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *CaracteristicaRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Caracteristica, error) {
	return r.findAll(ctx, specification.OrderBy{Field: "nome"})
}

func (r *CaracteristicaRepositoryImpl) FindByIDs(ctx context.Context, ids []uint) ([]*entity.Caracteristica, error) {
	if len(ids) == 0 {
		return []*entity.Caracteristica{}, nil
	}
	return r.findAll(ctx, specification.ByIDs{IDs: ids})
}

func (r *CaracteristicaRepositoryImpl) FindByNomeIgnoreCase(ctx context.Context, nome string) (*entity.Caracteristica, error) {
	return r.findOne(ctx, specification.FieldEqualsIgnoreCase{Field: "nome", Value: nome})
}

func (r *CaracteristicaRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Caracteristica, error) {
	var m model.Caracteristica
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CaracteristicaRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Caracteristica, error) {
	var models []*model.Caracteristica
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
