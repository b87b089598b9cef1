package mapper

import (
	"encoding/json"

	"video-search-be/internal/entity"
	"video-search-be/internal/model"

	"gorm.io/datatypes"
)

type SearchMapper struct{}

func NewSearchMapper() *SearchMapper {
	return &SearchMapper{}
}

func (m *SearchMapper) ToEntity(s *model.Search) *entity.Search {
	if s == nil {
		return nil
	}
	return &entity.Search{
		Id:        s.Id,
		SessionId: s.SessionId,
		UserId:    s.UserId,
		Prompt:    s.Prompt,
		Params:    json.RawMessage(s.Params),
		CreatedAt: s.CreatedAt,
	}
}

func (m *SearchMapper) ToModel(s *entity.Search) *model.Search {
	if s == nil {
		return nil
	}
	return &model.Search{
		Id:        s.Id,
		SessionId: s.SessionId,
		UserId:    s.UserId,
		Prompt:    s.Prompt,
		Params:    datatypes.JSON(s.Params),
		CreatedAt: s.CreatedAt,
	}
}
