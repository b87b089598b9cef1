package entity

import (
	"time"

	"github.com/google/uuid"
)

// PageSession is one browser visit's analytics scope, from mount to the
// first of unload/hide/teardown. EndedAt is set at most once.
type PageSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	StartedAt time.Time
	EndedAt   *time.Time
}
