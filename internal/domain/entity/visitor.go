package entity

import "time"

// Visitor representa um visitante registrado em um culto ou evento.
type Visitor struct {
	ID        string
	UserID    string
	Name      string
	Phone     string
	VisitDate time.Time
	InvitedBy string // membro que convidou (texto livre)
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
