package dto

import "github.com/google/uuid"

type SearchRequest struct {
	Prompt              string    `json:"prompt" validate:"required"`
	SimilarityThreshold float64   `json:"similarity_threshold"`
	MatchCount          int       `json:"match_count"`
	SessionId           uuid.UUID `json:"session_id"`
}

type SearchMatch struct {
	Id         string  `json:"id"`
	Title      string  `json:"title"`
	AccessUrl  string  `json:"access_url"`
	Similarity float64 `json:"similarity"`
}

type SearchResponse struct {
	Matches   []SearchMatch `json:"matches"`
	Prompt    string        `json:"prompt"`
	Threshold float64       `json:"threshold"`
	SearchId  uuid.UUID     `json:"search_id"`
}
