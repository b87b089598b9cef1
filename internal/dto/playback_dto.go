package dto

import "video-search-be/pkg/playback"

type ToggleAutoAdvanceRequest struct {
	Enabled bool `json:"enabled"`
}

type IntervalRequest struct {
	IntervalSeconds int `json:"interval_seconds" validate:"required"`
}

type FullscreenSyncRequest struct {
	Active bool `json:"active"`
}

type BookmarkRequest struct {
	VideoId string `json:"video_id" validate:"required"`
}

type PlaybackStateResponse struct {
	SessionId          string          `json:"session_id"`
	Slots              []playback.Slot `json:"slots"`
	AutoAdvanceEnabled bool            `json:"auto_advance_enabled"`
	IntervalSeconds    int             `json:"interval_seconds"`
	FullscreenActive   bool            `json:"fullscreen_active"`
	BookmarkedVideoIds []string        `json:"bookmarked_video_ids"`
	MatchCount         int             `json:"match_count"`
}
