package models

import "time"

// PingResponse represents a health check
// swagger:model PingResponse
type PingResponse struct {
	OK        bool      `json:"ok"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents any failed call
// swagger:model ErrorResponse
type ErrorResponse struct {
	OK bool `json:"ok"`

	// Machine-readable error kind
	// example: withdraw_not_allowed
	Error string `json:"error"`

	// Human-readable reason
	// example: You must have at least 5 investments in different plans before withdrawal.
	Reason string `json:"reason,omitempty"`
}
