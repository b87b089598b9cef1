package model

import (
	"time"

	"github.com/google/uuid"
)

type PageSession struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartedAt time.Time  `gorm:"not null"`
	EndedAt   *time.Time `gorm:"index"`
}

func (PageSession) TableName() string {
	return "page_sessions"
}
