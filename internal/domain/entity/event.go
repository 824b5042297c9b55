package entity

import "time"

// Event representa um evento da igreja (conferência, retiro, ensaio...).
type Event struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time // nil = sem horário de término definido
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
