package dto

import "time"

// EventEnvelope is the wire shape used on the message bus, the NATS mirror
// and the websocket stream.
type EventEnvelope struct {
	EventType  string                 `json:"event_type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}
