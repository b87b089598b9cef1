package contract

import (
	"context"

	"video-search-be/internal/entity"
	"video-search-be/internal/repository/specification"
)

type AutoAdvanceIntervalRepository interface {
	Create(ctx context.Context, record *entity.AutoAdvanceInterval) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AutoAdvanceInterval, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
