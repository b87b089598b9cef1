package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
}

type EndSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Ended     bool      `json:"ended"`
}

type SessionEventRecord struct {
	VideoId   string    `json:"video_id"`
	EventType string    `json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionSummaryResponse is the analytics rollup of one page session.
type SessionSummaryResponse struct {
	SessionId         uuid.UUID            `json:"session_id"`
	StartedAt         time.Time            `json:"started_at"`
	EndedAt           *time.Time           `json:"ended_at"`
	InteractionCount  int64                `json:"interaction_count"`
	NextCount         int64                `json:"next_count"`
	PrevCount         int64                `json:"prev_count"`
	SearchCount       int64                `json:"search_count"`
	LastPrompt        string               `json:"last_prompt,omitempty"`
	IntervalEditCount int64                `json:"interval_edit_count"`
	LastIntervalSet   *int                 `json:"last_interval_set,omitempty"`
	CompilationCount  int                  `json:"compilation_count"`
	RecentEvents      []SessionEventRecord `json:"recent_events"`
}

type SessionListItem struct {
	SessionId uuid.UUID  `json:"session_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

type SessionListResponse struct {
	Sessions  []SessionListItem `json:"sessions"`
	OpenCount int64             `json:"open_count"`
}
