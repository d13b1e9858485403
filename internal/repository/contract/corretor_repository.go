package contract

import (
	"context"

	"imobiliaria-crm-be/internal/entity"
)

// Finders return (nil, nil) when no record matches.
type CorretorRepository interface {
	Create(ctx context.Context, corretor *entity.Corretor) error
	Update(ctx context.Context, corretor *entity.Corretor) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*entity.Corretor, error)
	FindAll(ctx context.Context) ([]*entity.Corretor, error)
	FindAtivos(ctx context.Context) ([]*entity.Corretor, error)
	FindByCpf(ctx context.Context, cpf string) (*entity.Corretor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Corretor, error)
	FindByCreci(ctx context.Context, creci string) (*entity.Corretor, error)
}
