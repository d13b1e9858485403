package contract

import (
	"context"

	"imobiliaria-crm-be/internal/entity"
)

type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*entity.Cliente, error)
	FindAll(ctx context.Context) ([]*entity.Cliente, error)
	FindByCpf(ctx context.Context, cpf string) (*entity.Cliente, error)
	FindByEmailIgnoreCase(ctx context.Context, email string) (*entity.Cliente, error)
}
