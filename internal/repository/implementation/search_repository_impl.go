package implementation

import (
	"context"
	"errors"

	"video-search-be/internal/entity"
	"video-search-be/internal/mapper"
	"video-search-be/internal/model"
	"video-search-be/internal/repository/contract"
	"video-search-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SearchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SearchMapper
}

func NewSearchRepository(db *gorm.DB) contract.SearchRepository {
	return &SearchRepositoryImpl{
		db:     db,
		mapper: mapper.NewSearchMapper(),
	}
}

func (r *SearchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SearchRepositoryImpl) Create(ctx context.Context, search *entity.Search) error {
	m := r.mapper.ToModel(search)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*search = *r.mapper.ToEntity(m)
	return nil
}

func (r *SearchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Search, error) {
	var m model.Search
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SearchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Search, error) {
	var models []*model.Search
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Search, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SearchRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Search{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
