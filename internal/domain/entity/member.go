package entity

import "time"

// Status válidos para Member.
const (
	MemberStatusAtivo   = "ativo"
	MemberStatusInativo = "inativo"
)

// Member representa um membro da igreja (escopado por UserID, o tenant).
type Member struct {
	ID          string
	UserID      string
	Name        string
	Email       string
	Phone       string
	Address     string
	BirthDate   *time.Time // nil se não informada
	BaptismDate *time.Time
	Status      string // ativo, inativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
