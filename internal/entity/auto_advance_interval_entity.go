package entity

import (
	"time"

	"github.com/google/uuid"
)

// AutoAdvanceInterval records the settled interval value of one edit burst.
type AutoAdvanceInterval struct {
	Id          uuid.UUID
	SessionId   uuid.UUID
	IntervalSet int
	CreatedAt   time.Time
}
