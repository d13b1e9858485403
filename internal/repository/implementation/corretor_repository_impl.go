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

type CorretorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CorretorMapper
}

func NewCorretorRepository(db *gorm.DB) contract.CorretorRepository {
	return &CorretorRepositoryImpl{
		db:     db,
		mapper: mapper.NewCorretorMapper(),
	}
}

func (r *CorretorRepositoryImpl) Create(ctx context.Context, corretor *entity.Corretor) error {
	m := r.mapper.ToModel(corretor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*corretor = *r.mapper.ToEntity(m)
	return nil
}

func (r *CorretorRepositoryImpl) Update(ctx context.Context, corretor *entity.Corretor) error {
	m := r.mapper.ToModel(corretor)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*corretor = *r.mapper.ToEntity(m)
	return nil
}

func (r *CorretorRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Corretor{}, id).Error
}

func (r *CorretorRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Corretor, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *CorretorRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Corretor, error) {
	return r.findAll(ctx, specification.OrderBy{Field: "id"})
}

func (r *CorretorRepositoryImpl) FindAtivos(ctx context.Context) ([]*entity.Corretor, error) {
	return r.findAll(ctx, specification.Filter("ativo", true), specification.OrderBy{Field: "id"})
}

func (r *CorretorRepositoryImpl) FindByCpf(ctx context.Context, cpf string) (*entity.Corretor, error) {
	return r.findOne(ctx, specification.Filter("cpf", cpf))
}

func (r *CorretorRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Corretor, error) {
	return r.findOne(ctx, specification.Filter("email", email))
}

func (r *CorretorRepositoryImpl) FindByCreci(ctx context.Context, creci string) (*entity.Corretor, error) {
	return r.findOne(ctx, specification.Filter("creci", creci))
}

func (r *CorretorRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Corretor, error) {
	var m model.Corretor
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CorretorRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Corretor, error) {
	var models []*model.Corretor
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
