package mapper

import (
	"video-search-be/internal/entity"
	"video-search-be/internal/model"
)

type AutoAdvanceIntervalMapper struct{}

func NewAutoAdvanceIntervalMapper() *AutoAdvanceIntervalMapper {
	return &AutoAdvanceIntervalMapper{}
}

func (m *AutoAdvanceIntervalMapper) ToEntity(r *model.AutoAdvanceInterval) *entity.AutoAdvanceInterval {
	if r == nil {
		return nil
	}
	return &entity.AutoAdvanceInterval{
		Id:          r.Id,
		SessionId:   r.SessionId,
		IntervalSet: r.IntervalSet,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *AutoAdvanceIntervalMapper) ToModel(r *entity.AutoAdvanceInterval) *model.AutoAdvanceInterval {
	if r == nil {
		return nil
	}
	return &model.AutoAdvanceInterval{
		Id:          r.Id,
		SessionId:   r.SessionId,
		IntervalSet: r.IntervalSet,
		CreatedAt:   r.CreatedAt,
	}
}
