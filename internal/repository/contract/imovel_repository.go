package contract

import (
	"context"

	"imobiliaria-crm-be/internal/entity"
)

type ImovelRepository interface {
	// Create persists the row and the feature join rows carried on the entity.
	Create(ctx context.Context, imovel *entity.Imovel) error
	// Update overwrites the scalar columns and replaces the feature join rows
	// with the entity's current set, in one transaction.
	Update(ctx context.Context, imovel *entity.Imovel) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*entity.Imovel, error)
	FindAll(ctx context.Context) ([]*entity.Imovel, error)
	FindByCodigo(ctx context.Context, codigo string) (*entity.Imovel, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ClearCaracteristicas(ctx context.Context, imovelID uint) error
}
