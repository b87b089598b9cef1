package model

import (
	"time"

	"github.com/google/uuid"
)

type CompilationModeSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	EnteredAt time.Time `gorm:"not null"`
	ExitedAt  *time.Time
}

func (CompilationModeSession) TableName() string {
	return "compilation_mode_sessions"
}
