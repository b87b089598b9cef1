package contract

import (
	"context"
	"time"

	"video-search-be/internal/entity"
	"video-search-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PageSessionRepository interface {
	Create(ctx context.Context, session *entity.PageSession) error
	// End closes the session once. Calling it again for the same id is a no-op.
	End(ctx context.Context, id uuid.UUID, endedAt time.Time) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PageSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
