package dto

import "time"

// SaveVisitorRequest body para POST/PUT /api/visitors.
type SaveVisitorRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	VisitDate string `json:"visit_date"` // "2006-01-02"
	InvitedBy string `json:"invited_by,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// VisitorResponse visitante em respostas.
type VisitorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	VisitDate time.Time `json:"visit_date"`
	InvitedBy string    `json:"invited_by,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
