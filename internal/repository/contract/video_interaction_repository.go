package contract

import (
	"context"

	"video-search-be/internal/entity"
	"video-search-be/internal/repository/specification"
)

type VideoInteractionRepository interface {
	Create(ctx context.Context, interaction *entity.VideoInteraction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VideoInteraction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
