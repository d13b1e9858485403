package implementation

import (
	"context"
	"errors"

	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/mapper"
	"imobiliaria-crm-be/internal/model"
	"imobiliaria-crm-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ImagemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ImagemMapper
}

func NewImagemRepository(db *gorm.DB) contract.ImagemRepository {
	return &ImagemRepositoryImpl{
		db:     db,
		mapper: mapper.NewImagemMapper(),
	}
}

func (r *ImagemRepositoryImpl) Create(ctx context.Context, imagem *entity.Imagem) error {
	m := r.mapper.ToModel(imagem)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*imagem = *r.mapper.ToEntity(m)
	return nil
}

func (r *ImagemRepositoryImpl) Update(ctx context.Context, imagem *entity.Imagem) error {
	m := r.mapper.ToModel(imagem)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*imagem = *r.mapper.ToEntity(m)
	return nil
}

func (r *ImagemRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Imagem{}, id).Error
}

func (r *ImagemRepositoryImpl) FindByIDAndImovelID(ctx context.Context, id, imovelID uint) (*entity.Imagem, error) {
	var m model.Imagem
	err := r.db.WithContext(ctx).
		Where("id = ? AND imovel_id = ?", id, imovelID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ImagemRepositoryImpl) FindByImovelID(ctx context.Context, imovelID uint) ([]*entity.Imagem, error) {
	var models []*model.Imagem
	err := r.db.WithContext(ctx).
		Where("imovel_id = ?", imovelID).
		Order("ordem ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ImagemRepositoryImpl) DeleteByImovelID(ctx context.Context, imovelID uint) error {
	return r.db.WithContext(ctx).Where("imovel_id = ?", imovelID).Delete(&model.Imagem{}).Error
}
