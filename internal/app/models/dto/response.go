package dto

import "time"

// StatusResponse is returned by the liveness and health endpoints
type StatusResponse struct {
	Status    string    `json:"status" example:"ok"`
	Message   string    `json:"message,omitempty" example:"pong"`
	Database  string    `json:"database,omitempty" example:"postgres"`
	Timestamp time.Time `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewStatusResponse creates a status response stamped with the current time
func NewStatusResponse(status, message string) StatusResponse {
	return StatusResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	}
}
