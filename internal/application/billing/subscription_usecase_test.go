package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// checkoutProvider captura o pedido de Initiate e devolve o handle fixo.
type checkoutProvider struct {
	name   string
	handle *billing.CheckoutHandle
	last   billing.InitiateRequest
}

func (p *checkoutProvider) Name() string { return p.name }

func (p *checkoutProvider) Initiate(_ context.Context, req billing.InitiateRequest) (*billing.CheckoutHandle, error) {
	p.last = req
	return p.handle, nil
}

func (p *checkoutProvider) Reconcile(context.Context, billing.RawEvent) (*billing.PlanUpdate, error) {
	return nil, nil
}

// ─── Status ───

func TestSubscription_Status_TrialVigente(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.profiles["user-42"] = &entity.Profile{
		ID:         "user-42",
		ActivePlan: entity.PlanExperimental,
		CreatedAt:  time.Now().Add(-3 * 24 * time.Hour),
	}
	uc := billing.NewSubscriptionUseCase(profiles, nil)

	st, err := uc.Status("user-42")
	require.NoError(t, err)
	assert.Equal(t, "Experimental", st.ActivePlan)
	assert.Equal(t, "Período de Teste", st.DisplayStatus)
	assert.False(t, st.IsExpired)
	require.NotNil(t, st.DaysLeft)
	assert.Equal(t, 11, *st.DaysLeft)
}

func TestSubscription_Status_TrialExpirado(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.profiles["user-42"] = &entity.Profile{
		ID:         "user-42",
		ActivePlan: entity.PlanExperimental,
		CreatedAt:  time.Now().Add(-20 * 24 * time.Hour),
	}
	uc := billing.NewSubscriptionUseCase(profiles, nil)

	st, err := uc.Status("user-42")
	require.NoError(t, err)
	assert.Equal(t, "Período de Teste Expirado", st.DisplayStatus)
	assert.True(t, st.IsExpired)
	require.NotNil(t, st.DaysLeft)
	assert.Equal(t, 0, *st.DaysLeft)
}

// Planos pagos nunca expiram pelo relógio: a expiração deles é o provedor
// rebaixar o plano via webhook de cancelamento.
func TestSubscription_Status_PlanoPago(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.profiles["user-42"] = &entity.Profile{
		ID:         "user-42",
		ActivePlan: entity.PlanAnual,
		CreatedAt:  time.Now().Add(-400 * 24 * time.Hour),
	}
	uc := billing.NewSubscriptionUseCase(profiles, nil)

	st, err := uc.Status("user-42")
	require.NoError(t, err)
	assert.Equal(t, "Plano Anual", st.DisplayStatus)
	assert.False(t, st.IsExpired)
	assert.Nil(t, st.DaysLeft)
}

func TestSubscription_Status_PerfilInexistente(t *testing.T) {
	uc := billing.NewSubscriptionUseCase(newFakeProfileRepo(), nil)

	_, err := uc.Status("ninguem")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── PlanActive ───

func TestSubscription_PlanActive(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.profiles["vigente"] = &entity.Profile{
		ID: "vigente", ActivePlan: entity.PlanExperimental, CreatedAt: time.Now(),
	}
	profiles.profiles["expirado"] = &entity.Profile{
		ID: "expirado", ActivePlan: entity.PlanExperimental, CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
	}
	uc := billing.NewSubscriptionUseCase(profiles, nil)

	active, err := uc.PlanActive("vigente")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = uc.PlanActive("expirado")
	require.NoError(t, err)
	assert.False(t, active)

	// Perfil inexistente conta como inativo, não como erro.
	active, err = uc.PlanActive("ninguem")
	require.NoError(t, err)
	assert.False(t, active)
}

// ─── Checkout ───

func TestSubscription_Checkout_EncaminhaParaProvedor(t *testing.T) {
	p := &checkoutProvider{
		name:   "pagbank",
		handle: &billing.CheckoutHandle{Provider: "pagbank", RedirectURL: "https://pagbank.example/checkout/1"},
	}
	uc := billing.NewSubscriptionUseCase(newFakeProfileRepo(), []billing.PaymentProvider{p})

	out, err := uc.Checkout(context.Background(), "user-42", dto.CheckoutRequest{Provider: "pagbank", Plan: "Mensal"})
	require.NoError(t, err)
	assert.Equal(t, "pagbank", out.Provider)
	assert.Equal(t, "https://pagbank.example/checkout/1", out.RedirectURL)
	assert.Empty(t, out.ClientSecret)

	assert.Equal(t, "user-42", p.last.UserID)
	assert.Equal(t, entity.PlanMensal, p.last.Plan)
	assert.True(t, p.last.Amount.Equal(decimal.RequireFromString("59.90")))
}

func TestSubscription_Checkout_Validacao(t *testing.T) {
	p := &checkoutProvider{name: "stripe", handle: &billing.CheckoutHandle{Provider: "stripe"}}
	uc := billing.NewSubscriptionUseCase(newFakeProfileRepo(), []billing.PaymentProvider{p})

	// Sem usuário autenticado.
	_, err := uc.Checkout(context.Background(), "", dto.CheckoutRequest{Provider: "stripe", Plan: "Anual"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Experimental não é comprável.
	_, err = uc.Checkout(context.Background(), "user-42", dto.CheckoutRequest{Provider: "stripe", Plan: "Experimental"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Plano desconhecido.
	_, err = uc.Checkout(context.Background(), "user-42", dto.CheckoutRequest{Provider: "stripe", Plan: "Premium"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Provedor não registrado.
	_, err = uc.Checkout(context.Background(), "user-42", dto.CheckoutRequest{Provider: "paypal", Plan: "Anual"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
