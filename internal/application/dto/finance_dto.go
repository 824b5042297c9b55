package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveEntradaRequest body para POST/PUT /api/entradas (dízimos e ofertas).
type SaveEntradaRequest struct {
	Tipo       string          `json:"tipo"` // dizimo, oferta
	MemberName string          `json:"member_name,omitempty"`
	Valor      decimal.Decimal `json:"valor"`
	Date       string          `json:"date"` // "2006-01-02"
	Notes      string          `json:"notes,omitempty"`
}

// EntradaResponse entrada em respostas.
type EntradaResponse struct {
	ID         string          `json:"id"`
	Tipo       string          `json:"tipo"`
	MemberName string          `json:"member_name,omitempty"`
	Valor      decimal.Decimal `json:"valor"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SaveSaidaRequest body para POST/PUT /api/saidas (despesas).
type SaveSaidaRequest struct {
	Descricao string          `json:"descricao"`
	Categoria string          `json:"categoria,omitempty"`
	Valor     decimal.Decimal `json:"valor"`
	Date      string          `json:"date"` // "2006-01-02"
}

// SaidaResponse despesa em respostas.
type SaidaResponse struct {
	ID        string          `json:"id"`
	Descricao string          `json:"descricao"`
	Categoria string          `json:"categoria,omitempty"`
	Valor     decimal.Decimal `json:"valor"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// DashboardResponse totais do mês corrente para a tela inicial.
type DashboardResponse struct {
	Month       string          `json:"month"` // "2006-01"
	Entradas    decimal.Decimal `json:"entradas"`
	Saidas      decimal.Decimal `json:"saidas"`
	Saldo       decimal.Decimal `json:"saldo"`
	MemberCount int             `json:"member_count"`
}
