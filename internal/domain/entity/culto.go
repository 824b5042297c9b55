package entity

import "time"

// Culto representa um culto/serviço da igreja.
type Culto struct {
	ID        string
	UserID    string
	Title     string
	Date      time.Time
	Preacher  string // pregador
	Theme     string // tema da mensagem
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
