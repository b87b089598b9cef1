package implementation

import (
	"context"

	"video-search-be/internal/entity"
	"video-search-be/internal/mapper"
	"video-search-be/internal/model"
	"video-search-be/internal/repository/contract"
	"video-search-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VideoInteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VideoInteractionMapper
}

func NewVideoInteractionRepository(db *gorm.DB) contract.VideoInteractionRepository {
	return &VideoInteractionRepositoryImpl{
		db:     db,
		mapper: mapper.NewVideoInteractionMapper(),
	}
}

func (r *VideoInteractionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VideoInteractionRepositoryImpl) Create(ctx context.Context, interaction *entity.VideoInteraction) error {
	m := r.mapper.ToModel(interaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *VideoInteractionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VideoInteraction, error) {
	var models []*model.VideoInteraction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.VideoInteraction, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *VideoInteractionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VideoInteraction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
