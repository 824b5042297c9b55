package dto

import "time"

// ProfileResponse perfil da igreja em respostas.
type ProfileResponse struct {
	ID         string    `json:"id"`
	ChurchName string    `json:"church_name"`
	ActivePlan string    `json:"active_plan"`
	Theme      string    `json:"theme,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateProfileRequest body para PUT /api/profile.
// O plano não é editável por aqui; só os webhooks escrevem active_plan.
type UpdateProfileRequest struct {
	ChurchName string `json:"church_name"`
	Theme      string `json:"theme,omitempty"`
}
