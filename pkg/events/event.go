package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_STARTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Analytics event type codes. NEXT/PREV/AUTO_ADVANCE_* are stored verbatim
// in the video_interactions event_type column.
const (
	TypeSessionStarted   = "SESSION_STARTED"
	TypeSessionEnded     = "SESSION_ENDED"
	TypeNext             = "NEXT"
	TypePrev             = "PREV"
	TypeAutoAdvanceStart = "AUTO_ADVANCE_START"
	TypeAutoAdvanceStop  = "AUTO_ADVANCE_STOP"
	TypeIntervalSet      = "INTERVAL_SET"
)

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSessionStarted records the creation of a page session.
func NewSessionStarted(sessionID, userID uuid.UUID) Event {
	return BaseEvent{
		Type: TypeSessionStarted,
		Data: map[string]interface{}{
			"session_id": sessionID.String(),
			"user_id":    userID.String(),
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionEnded records the close of a page session. The consumer's update
// is guarded so repeated events cannot overwrite an existing ended_at.
func NewSessionEnded(sessionID uuid.UUID) Event {
	return BaseEvent{
		Type: TypeSessionEnded,
		Data: map[string]interface{}{
			"session_id": sessionID.String(),
		},
		OccurredAt: time.Now(),
	}
}

// NewInteraction records a user navigation or auto-advance toggle against the
// video that was current when the interaction happened. durationSeconds is
// only meaningful for AUTO_ADVANCE_STOP.
func NewInteraction(sessionID uuid.UUID, videoID, eventType string, durationSeconds *int) Event {
	data := map[string]interface{}{
		"session_id": sessionID.String(),
		"video_id":   videoID,
	}
	if durationSeconds != nil {
		data["auto_advance_duration"] = *durationSeconds
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

// NewIntervalSet records the settled value of a burst of interval edits.
func NewIntervalSet(sessionID uuid.UUID, intervalSeconds int) Event {
	return BaseEvent{
		Type: TypeIntervalSet,
		Data: map[string]interface{}{
			"session_id":   sessionID.String(),
			"interval_set": intervalSeconds,
		},
		OccurredAt: time.Now(),
	}
}
