package dto

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"slug and eventType are required"`
}

type TrackEventResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id" example:"evt_V1StGXR8Z5jdHi6B"`
}

type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service" example:"quicklink-app"`
	Database  string    `json:"database" example:"connected"`
	// Uptime is in seconds.
	Uptime float64 `json:"uptime" example:"3600.5"`
	Error  string  `json:"error,omitempty"`
}

type DefaultOwnerResponse struct {
	Slug string `json:"slug" example:"alice"`
}
