package dto

import "time"

// SaveCultoRequest body para POST/PUT /api/cultos.
type SaveCultoRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"` // RFC 3339 ou "2006-01-02"
	Preacher string `json:"preacher,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// CultoResponse culto em respostas.
type CultoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Preacher  string    `json:"preacher,omitempty"`
	Theme     string    `json:"theme,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
