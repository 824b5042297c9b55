package dto

import "time"

// SaveMemberRequest body para POST/PUT /api/members.
// Datas no formato "2006-01-02"; vazio = não informada.
type SaveMemberRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"`
	BaptismDate string `json:"baptism_date,omitempty"`
	Status      string `json:"status,omitempty"` // ativo (padrão), inativo
}

// MemberResponse membro em respostas.
type MemberResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	BaptismDate *time.Time `json:"baptism_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
