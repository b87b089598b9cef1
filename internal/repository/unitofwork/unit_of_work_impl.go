package unitofwork

import (
	"context"
	"fmt"

	"video-search-be/internal/repository/contract"
	"video-search-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when operating outside one
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

func (u *UnitOfWorkImpl) PageSessionRepository() contract.PageSessionRepository {
	return implementation.NewPageSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VideoInteractionRepository() contract.VideoInteractionRepository {
	return implementation.NewVideoInteractionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AutoAdvanceIntervalRepository() contract.AutoAdvanceIntervalRepository {
	return implementation.NewAutoAdvanceIntervalRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CompilationSessionRepository() contract.CompilationSessionRepository {
	return implementation.NewCompilationSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SearchRepository() contract.SearchRepository {
	return implementation.NewSearchRepository(u.getDB())
}
