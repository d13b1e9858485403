package contract

import (
	"context"

	"imobiliaria-crm-be/internal/entity"
)

type CaracteristicaRepository interface {
	Create(ctx context.Context, caracteristica *entity.Caracteristica) error
	Update(ctx context.Context, caracteristica *entity.Caracteristica) error
	// Delete also removes the property join rows for the tag; the properties
	// themselves are untouched.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*entity.Caracteristica, error)
	FindAll(ctx context.Context) ([]*entity.Caracteristica, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*entity.Caracteristica, error)
	FindByNomeIgnoreCase(ctx context.Context, nome string) (*entity.Caracteristica, error)
}
