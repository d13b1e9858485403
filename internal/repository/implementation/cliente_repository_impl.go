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

type ClienteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClienteMapper
}

func NewClienteRepository(db *gorm.DB) contract.ClienteRepository {
	return &ClienteRepositoryImpl{
		db:     db,
		mapper: mapper.NewClienteMapper(),
	}
}

func (r *ClienteRepositoryImpl) Create(ctx context.Context, cliente *entity.Cliente) error {
	m := r.mapper.ToModel(cliente)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return r.reload(ctx, m.Id, cliente)
}

func (r *ClienteRepositoryImpl) Update(ctx context.Context, cliente *entity.Cliente) error {
	m := r.mapper.ToModel(cliente)
	// Save writes every column, so a nil CorretorId clears the association.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	return r.reload(ctx, m.Id, cliente)
}

func (r *ClienteRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

func (r *ClienteRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Cliente, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ClienteRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	var models []*model.Cliente
	query := r.db.WithContext(ctx).Preload("Corretor").Order("id ASC")
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ClienteRepositoryImpl) FindByCpf(ctx context.Context, cpf string) (*entity.Cliente, error) {
	return r.findOne(ctx, specification.Filter("cpf", cpf))
}

func (r *ClienteRepositoryImpl) FindByEmailIgnoreCase(ctx context.Context, email string) (*entity.Cliente, error) {
	return r.findOne(ctx, specification.FieldEqualsIgnoreCase{Field: "email", Value: email})
}

func (r *ClienteRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Cliente, error) {
	var m model.Cliente
	query := applySpecifications(r.db.WithContext(ctx).Preload("Corretor"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ClienteRepositoryImpl) reload(ctx context.Context, id uint, dst *entity.Cliente) error {
	loaded, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if loaded != nil {
		*dst = *loaded
	}
	return nil
}
