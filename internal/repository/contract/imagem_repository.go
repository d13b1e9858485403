package contract

import (
	"context"

	"imobiliaria-crm-be/internal/entity"
)

type ImagemRepository interface {
	Create(ctx context.Context, imagem *entity.Imagem) error
	Update(ctx context.Context, imagem *entity.Imagem) error
	Delete(ctx context.Context, id uint) error
	// FindByIDAndImovelID scopes the lookup by parent: an existing image id
	// under a different property is (nil, nil), never a hit.
	FindByIDAndImovelID(ctx context.Context, id, imovelID uint) (*entity.Imagem, error)
	FindByImovelID(ctx context.Context, imovelID uint) ([]*entity.Imagem, error)
	DeleteByImovelID(ctx context.Context, imovelID uint) error
}
