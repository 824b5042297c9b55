// Package subscription contém a lógica pura de status do plano da igreja:
// planos pagos nunca expiram; o Experimental segue a janela de teste de
// 14 dias contada a partir da criação da conta.
package subscription

import (
	"time"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// TrialDays é a duração do período de teste do plano Experimental.
// Valor de política fixo, não configurável por tenant.
const TrialDays = 14

// Status é o resultado do cálculo de situação do plano.
// DaysLeft é nil para planos pagos; para o Experimental é o número de dias
// restantes de teste (nunca negativo).
type Status struct {
	Plan          entity.Plan
	DisplayStatus string
	Expired       bool
	DaysLeft      *int
}

// Resolve calcula a situação efetiva do plano a partir do plano persistido,
// da data de criação da conta e do instante atual.
//
// Regras:
//   - Mensal/Anual: nunca expirado, DaysLeft nil.
//   - Qualquer outro valor (inclusive desconhecido) segue a janela de teste.
//   - createdAt zero: sem como calcular a janela, trata como expirado.
//   - Dias decorridos por teto da diferença em milissegundos / 1 dia, então
//     a conta expira exatamente no dia 14 e DaysLeft nunca fica negativo.
func Resolve(plan entity.Plan, createdAt time.Time, now time.Time) Status {
	switch plan {
	case entity.PlanMensal:
		return Status{Plan: plan, DisplayStatus: "Plano Mensal", Expired: false}
	case entity.PlanAnual:
		return Status{Plan: plan, DisplayStatus: "Plano Anual", Expired: false}
	}

	zero := 0
	if createdAt.IsZero() {
		return Status{Plan: entity.PlanExperimental, DisplayStatus: "Período de Teste Expirado", Expired: true, DaysLeft: &zero}
	}

	elapsed := ceilDays(now.Sub(createdAt))
	left := TrialDays - elapsed
	if left > 0 {
		return Status{Plan: entity.PlanExperimental, DisplayStatus: "Período de Teste", Expired: false, DaysLeft: &left}
	}
	return Status{Plan: entity.PlanExperimental, DisplayStatus: "Período de Teste Expirado", Expired: true, DaysLeft: &zero}
}

// ceilDays retorna o teto de d em dias inteiros.
func ceilDays(d time.Duration) int {
	const day = 24 * time.Hour
	if d <= 0 {
		return 0
	}
	n := d / day
	if d%day != 0 {
		n++
	}
	return int(n)
}
