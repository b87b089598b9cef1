package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Search struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID      `gorm:"type:uuid;index"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Prompt    string         `gorm:"not null"`
	Params    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Search) TableName() string {
	return "searches"
}
