package subscription_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/subscription"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// Conta criada há 3 dias e meio: elapsed sobe para 4 por teto, restam 10 dias.
func TestResolve_TrialVigente(t *testing.T) {
	createdAt := base.Add(-3*24*time.Hour - 12*time.Hour)

	st := subscription.Resolve(entity.PlanExperimental, createdAt, base)

	assert.False(t, st.Expired)
	assert.Equal(t, "Período de Teste", st.DisplayStatus)
	require.NotNil(t, st.DaysLeft)
	assert.Equal(t, 10, *st.DaysLeft)
}

// Conta criada agora: nenhum tempo decorrido, os 14 dias inteiros restam.
func TestResolve_ContaRecemCriada(t *testing.T) {
	st := subscription.Resolve(entity.PlanExperimental, base, base)

	assert.False(t, st.Expired)
	require.NotNil(t, st.DaysLeft)
	assert.Equal(t, subscription.TrialDays, *st.DaysLeft)
}

// Fronteira do dia 14: um segundo depois de completar 14 dias exatos a
// conta está expirada; um segundo antes ainda resta 1 dia.
func TestResolve_FronteiraDia14(t *testing.T) {
	exato := base.Add(-14 * 24 * time.Hour)

	st := subscription.Resolve(entity.PlanExperimental, exato, base)
	assert.True(t, st.Expired, "14 dias exatos: expirado (left == 0)")
	require.NotNil(t, st.DaysLeft)
	assert.Equal(t, 0, *st.DaysLeft)

	umSegundoAntes := exato.Add(time.Second)
	st = subscription.Resolve(entity.PlanExperimental, umSegundoAntes, base)
	assert.False(t, st.Expired, "a um segundo da fronteira ainda resta o dia 14")
	require.NotNil(t, st.DaysLeft)
	assert.Equal(t, 1, *st.DaysLeft)
}

// Conta bem antiga: expirada, DaysLeft fica em zero, nunca negativo.
func TestResolve_TrialExpiradoHaMuito(t *testing.T) {
	createdAt := base.Add(-90 * 24 * time.Hour)

	st := subscription.Resolve(entity.PlanExperimental, createdAt, base)

	assert.True(t, st.Expired)
	assert.Equal(t, "Período de Teste Expirado", st.DisplayStatus)
	require.NotNil(t, st.DaysLeft)
	assert.Equal(t, 0, *st.DaysLeft)
}

// Planos pagos nunca expiram, independente da idade da conta.
func TestResolve_PlanosPagosNaoExpiram(t *testing.T) {
	antiga := base.Add(-5 * 365 * 24 * time.Hour)

	cases := []struct {
		plan    entity.Plan
		display string
	}{
		{entity.PlanMensal, "Plano Mensal"},
		{entity.PlanAnual, "Plano Anual"},
	}
	for _, tc := range cases {
		st := subscription.Resolve(tc.plan, antiga, base)
		assert.False(t, st.Expired, "plano %s não expira", tc.plan)
		assert.Equal(t, tc.display, st.DisplayStatus)
		assert.Nil(t, st.DaysLeft, "plano pago não tem contagem de dias")
	}
}

// Valor desconhecido persistido segue a política do Experimental.
func TestResolve_PlanoDesconhecidoCaiNoTrial(t *testing.T) {
	recente := base.Add(-24 * time.Hour)

	st := subscription.Resolve(entity.ParsePlan("Premium"), recente, base)

	assert.Equal(t, entity.PlanExperimental, st.Plan)
	assert.False(t, st.Expired)
}

// createdAt zero: sem âncora de cálculo, conservadoramente expirado.
func TestResolve_CreatedAtZero(t *testing.T) {
	st := subscription.Resolve(entity.PlanExperimental, time.Time{}, base)

	assert.True(t, st.Expired)
	require.NotNil(t, st.DaysLeft)
	assert.Equal(t, 0, *st.DaysLeft)
}

// DaysLeft nunca cresce com o passar do tempo (monotônico não crescente).
func TestResolve_DaysLeftMonotonico(t *testing.T) {
	createdAt := base
	prev := subscription.TrialDays + 1
	for h := 0; h <= 20*24; h += 7 {
		now := createdAt.Add(time.Duration(h) * time.Hour)
		st := subscription.Resolve(entity.PlanExperimental, createdAt, now)
		require.NotNil(t, st.DaysLeft)
		assert.LessOrEqual(t, *st.DaysLeft, prev, "DaysLeft não pode subir (h=%d)", h)
		assert.GreaterOrEqual(t, *st.DaysLeft, 0)
		prev = *st.DaysLeft
	}
}
