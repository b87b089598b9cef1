package implementation

import (
	"context"
	"errors"
	"time"

	"video-search-be/internal/entity"
	"video-search-be/internal/mapper"
	"video-search-be/internal/model"
	"video-search-be/internal/repository/contract"
	"video-search-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PageSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PageSessionMapper
}

func NewPageSessionRepository(db *gorm.DB) contract.PageSessionRepository {
	return &PageSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewPageSessionMapper(),
	}
}

func (r *PageSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PageSessionRepositoryImpl) Create(ctx context.Context, session *entity.PageSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *PageSessionRepositoryImpl) End(ctx context.Context, id uuid.UUID, endedAt time.Time) error {
	// Guarded update so late duplicates (unload racing teardown) keep the
	// first recorded end time.
	return r.db.WithContext(ctx).
		Model(&model.PageSession{}).
		Where("id = ? AND ended_at IS NULL", id).
		Update("ended_at", endedAt).Error
}

func (r *PageSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PageSession, error) {
	var m model.PageSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PageSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageSession, error) {
	var models []*model.PageSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PageSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PageSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PageSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
