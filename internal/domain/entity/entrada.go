package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de entrada financeira.
const (
	EntradaTipoDizimo = "dizimo"
	EntradaTipoOferta = "oferta"
)

// Entrada representa um dízimo ou oferta recebido.
type Entrada struct {
	ID         string
	UserID     string
	Tipo       string // dizimo, oferta
	MemberName string // vazio para ofertas anônimas
	Valor      decimal.Decimal
	Date       time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
