package unitofwork

import (
	"context"

	"imobiliaria-crm-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one database handle. Begin
// switches that handle to a transaction so multi-table writes (property
// delete, association replacement) commit together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CorretorRepository() contract.CorretorRepository
	ClienteRepository() contract.ClienteRepository
	CaracteristicaRepository() contract.CaracteristicaRepository
	ImovelRepository() contract.ImovelRepository
	ImagemRepository() contract.ImagemRepository
}
