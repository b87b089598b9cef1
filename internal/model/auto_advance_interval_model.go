package model

import (
	"time"

	"github.com/google/uuid"
)

type AutoAdvanceInterval struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   uuid.UUID `gorm:"type:uuid;not null;index"`
	IntervalSet int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (AutoAdvanceInterval) TableName() string {
	return "auto_advance_intervals"
}
