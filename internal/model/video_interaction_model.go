package model

import (
	"time"

	"github.com/google/uuid"
)

type VideoInteraction struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId           uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoId             string    `gorm:"not null"`
	EventType           string    `gorm:"not null;index"`
	AutoAdvanceDuration *int
	CreatedAt           time.Time `gorm:"autoCreateTime"`
}

func (VideoInteraction) TableName() string {
	return "video_interactions"
}
