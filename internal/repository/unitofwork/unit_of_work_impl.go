package unitofwork

import (
	"context"
	"fmt"

	"imobiliaria-crm-be/internal/repository/contract"
	"imobiliaria-crm-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) CorretorRepository() contract.CorretorRepository {
	return implementation.NewCorretorRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ClienteRepository() contract.ClienteRepository {
	return implementation.NewClienteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CaracteristicaRepository() contract.CaracteristicaRepository {
	return implementation.NewCaracteristicaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ImovelRepository() contract.ImovelRepository {
	return implementation.NewImovelRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ImagemRepository() contract.ImagemRepository {
	return implementation.NewImagemRepository(u.getDB())
}
