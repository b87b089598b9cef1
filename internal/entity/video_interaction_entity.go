package entity

import (
	"time"

	"github.com/google/uuid"
)

// VideoInteraction is one append-only interaction row. AutoAdvanceDuration
// is present only for AUTO_ADVANCE_STOP events.
type VideoInteraction struct {
	Id                  uuid.UUID
	SessionId           uuid.UUID
	VideoId             string
	EventType           string
	AutoAdvanceDuration *int
	CreatedAt           time.Time
}
