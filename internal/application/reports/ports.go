package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// FinanceTotals totais do período para o relatório financeiro.
type FinanceTotals struct {
	Entradas decimal.Decimal
	Saidas   decimal.Decimal
	Saldo    decimal.Decimal
}

// FinancePeriod intervalo coberto pelo relatório.
type FinancePeriod struct {
	From time.Time
	To   time.Time
}

// ReportGenerator contrato de geração dos PDFs de relatório.
// Implementado pela infraestrutura (Maroto).
type ReportGenerator interface {
	FinanceReport(ctx context.Context, profile *entity.Profile, period FinancePeriod,
		entradas []*entity.Entrada, saidas []*entity.Saida, totals FinanceTotals) ([]byte, error)
	MemberReport(ctx context.Context, profile *entity.Profile, members []*entity.Member) ([]byte, error)
}
