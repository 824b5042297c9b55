package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// EntradaRepository contrato de persistência para dízimos e ofertas.
type EntradaRepository interface {
	Create(entrada *entity.Entrada) error
	GetByID(id string) (*entity.Entrada, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Entrada, error)
	// ListByPeriod lista as entradas do período [from, to] ordenadas por data.
	ListByPeriod(userID string, from, to time.Time) ([]*entity.Entrada, error)
	SumByPeriod(userID string, from, to time.Time) (decimal.Decimal, error)
	Update(entrada *entity.Entrada) error
	Delete(id string) error
}
