package handlers

import (
	"audioscribe/internal/transcript"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// TranscriptionResponse wraps a parsed transcript record and the paths of any
// exports written for it
type TranscriptionResponse struct {
	ID      string            `json:"id"`
	Record  transcript.Record `json:"record"`
	Exports []string          `json:"exports,omitempty"`
}
