package dto

import "time"

// SaveEventRequest body para POST/PUT /api/events.
type SaveEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	StartsAt    string `json:"starts_at"`          // RFC 3339
	EndsAt      string `json:"ends_at,omitempty"`  // RFC 3339
}

// EventResponse evento em respostas.
type EventResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
