package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// SaidaRepository contrato de persistência para despesas.
type SaidaRepository interface {
	Create(saida *entity.Saida) error
	GetByID(id string) (*entity.Saida, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Saida, error)
	ListByPeriod(userID string, from, to time.Time) ([]*entity.Saida, error)
	SumByPeriod(userID string, from, to time.Time) (decimal.Decimal, error)
	Update(saida *entity.Saida) error
	Delete(id string) error
}
