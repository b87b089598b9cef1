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

type AutoAdvanceIntervalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AutoAdvanceIntervalMapper
}

func NewAutoAdvanceIntervalRepository(db *gorm.DB) contract.AutoAdvanceIntervalRepository {
	return &AutoAdvanceIntervalRepositoryImpl{
		db:     db,
		mapper: mapper.NewAutoAdvanceIntervalMapper(),
	}
}

func (r *AutoAdvanceIntervalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AutoAdvanceIntervalRepositoryImpl) Create(ctx context.Context, record *entity.AutoAdvanceInterval) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *AutoAdvanceIntervalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AutoAdvanceInterval, error) {
	var models []*model.AutoAdvanceInterval
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AutoAdvanceInterval, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *AutoAdvanceIntervalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AutoAdvanceInterval{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
