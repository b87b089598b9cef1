package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompilationModeSession is one fullscreen viewing span. At most one open
// span (ExitedAt unset) exists per page session at a time.
type CompilationModeSession struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	EnteredAt time.Time
	ExitedAt  *time.Time
}
