package mapper

import (
	"video-search-be/internal/entity"
	"video-search-be/internal/model"
)

type PageSessionMapper struct{}

func NewPageSessionMapper() *PageSessionMapper {
	return &PageSessionMapper{}
}

func (m *PageSessionMapper) ToEntity(s *model.PageSession) *entity.PageSession {
	if s == nil {
		return nil
	}
	return &entity.PageSession{
		Id:        s.Id,
		UserId:    s.UserId,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}

func (m *PageSessionMapper) ToModel(s *entity.PageSession) *model.PageSession {
	if s == nil {
		return nil
	}
	return &model.PageSession{
		Id:        s.Id,
		UserId:    s.UserId,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}
