package mapper

import (
	"video-search-be/internal/entity"
	"video-search-be/internal/model"
)

type VideoInteractionMapper struct{}

func NewVideoInteractionMapper() *VideoInteractionMapper {
	return &VideoInteractionMapper{}
}

func (m *VideoInteractionMapper) ToEntity(i *model.VideoInteraction) *entity.VideoInteraction {
	if i == nil {
		return nil
	}
	return &entity.VideoInteraction{
		Id:                  i.Id,
		SessionId:           i.SessionId,
		VideoId:             i.VideoId,
		EventType:           i.EventType,
		AutoAdvanceDuration: i.AutoAdvanceDuration,
		CreatedAt:           i.CreatedAt,
	}
}

func (m *VideoInteractionMapper) ToModel(i *entity.VideoInteraction) *model.VideoInteraction {
	if i == nil {
		return nil
	}
	return &model.VideoInteraction{
		Id:                  i.Id,
		SessionId:           i.SessionId,
		VideoId:             i.VideoId,
		EventType:           i.EventType,
		AutoAdvanceDuration: i.AutoAdvanceDuration,
		CreatedAt:           i.CreatedAt,
	}
}
