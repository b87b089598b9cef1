package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Search is one logged search submission. Params holds the request metadata
// (threshold, match count) as raw JSON.
type Search struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	UserId    uuid.UUID
	Prompt    string
	Params    json.RawMessage
	CreatedAt time.Time
}
