package service

import (
	"context"
	"time"

	"video-search-be/internal/entity"
	"video-search-be/internal/repository/unitofwork"
	"video-search-be/pkg/playback"

	"github.com/google/uuid"
)

// compilationStore persists fullscreen compilation spans. Open and close are
// synchronous because the generated row id must round-trip back into the
// tracker to close the exact span later.
type compilationStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCompilationStore(uowFactory unitofwork.RepositoryFactory) playback.CompilationStore {
	return &compilationStore{uowFactory: uowFactory}
}

func (s *compilationStore) Open(ctx context.Context, sessionID uuid.UUID, enteredAt time.Time) (uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	span := entity.CompilationModeSession{
		Id:        uuid.New(),
		SessionId: sessionID,
		EnteredAt: enteredAt,
	}
	if err := uow.CompilationSessionRepository().Create(ctx, &span); err != nil {
		return uuid.Nil, err
	}
	return span.Id, nil
}

func (s *compilationStore) Close(ctx context.Context, id uuid.UUID, exitedAt time.Time) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CompilationSessionRepository().CloseById(ctx, id, exitedAt)
}
