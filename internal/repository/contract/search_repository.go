package contract

import (
	"context"

	"video-search-be/internal/entity"
	"video-search-be/internal/repository/specification"
)

type SearchRepository interface {
	Create(ctx context.Context, search *entity.Search) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Search, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Search, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
