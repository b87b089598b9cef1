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

type CompilationSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CompilationSessionMapper
}

func NewCompilationSessionRepository(db *gorm.DB) contract.CompilationSessionRepository {
	return &CompilationSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCompilationSessionMapper(),
	}
}

func (r *CompilationSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CompilationSessionRepositoryImpl) Create(ctx context.Context, span *entity.CompilationModeSession) error {
	m := r.mapper.ToModel(span)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*span = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompilationSessionRepositoryImpl) CloseById(ctx context.Context, id uuid.UUID, exitedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.CompilationModeSession{}).
		Where("id = ? AND exited_at IS NULL", id).
		Update("exited_at", exitedAt).Error
}

func (r *CompilationSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompilationModeSession, error) {
	var m model.CompilationModeSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CompilationSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompilationModeSession, error) {
	var models []*model.CompilationModeSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CompilationModeSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
