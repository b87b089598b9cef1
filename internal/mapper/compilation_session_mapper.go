package mapper

import (
	"video-search-be/internal/entity"
	"video-search-be/internal/model"
)

type CompilationSessionMapper struct{}

func NewCompilationSessionMapper() *CompilationSessionMapper {
	return &CompilationSessionMapper{}
}

func (m *CompilationSessionMapper) ToEntity(c *model.CompilationModeSession) *entity.CompilationModeSession {
	if c == nil {
		return nil
	}
	return &entity.CompilationModeSession{
		Id:        c.Id,
		SessionId: c.SessionId,
		EnteredAt: c.EnteredAt,
		ExitedAt:  c.ExitedAt,
	}
}

func (m *CompilationSessionMapper) ToModel(c *entity.CompilationModeSession) *model.CompilationModeSession {
	if c == nil {
		return nil
	}
	return &model.CompilationModeSession{
		Id:        c.Id,
		SessionId: c.SessionId,
		EnteredAt: c.EnteredAt,
		ExitedAt:  c.ExitedAt,
	}
}
