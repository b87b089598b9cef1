package contract

import (
	"context"
	"time"

	"video-search-be/internal/entity"
	"video-search-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CompilationSessionRepository interface {
	Create(ctx context.Context, span *entity.CompilationModeSession) error
	// CloseById stamps the exit time on an open span. Closing an already
	// closed span is a no-op.
	CloseById(ctx context.Context, id uuid.UUID, exitedAt time.Time) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompilationModeSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompilationModeSession, error)
}
