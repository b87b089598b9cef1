package unitofwork

import (
	"context"

	"video-search-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PageSessionRepository() contract.PageSessionRepository
	VideoInteractionRepository() contract.VideoInteractionRepository
	AutoAdvanceIntervalRepository() contract.AutoAdvanceIntervalRepository
	CompilationSessionRepository() contract.CompilationSessionRepository
	SearchRepository() contract.SearchRepository
}
