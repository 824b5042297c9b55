package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Saida representa uma despesa da igreja.
type Saida struct {
	ID        string
	UserID    string
	Descricao string
	Categoria string // aluguel, energia, missões, manutenção...
	Valor     decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
