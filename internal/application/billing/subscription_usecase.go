package billing

import (
	"context"
	"time"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/subscription"
)

// SubscriptionUseCase casos de uso da tela de assinatura: situação do plano
// e início de checkout nos provedores.
type SubscriptionUseCase struct {
	profileRepo repository.ProfileRepository
	providers   map[string]PaymentProvider
	now         func() time.Time
}

// NewSubscriptionUseCase constrói o caso de uso com os provedores registrados.
func NewSubscriptionUseCase(profileRepo repository.ProfileRepository, providers []PaymentProvider) *SubscriptionUseCase {
	m := make(map[string]PaymentProvider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &SubscriptionUseCase{profileRepo: profileRepo, providers: m, now: time.Now}
}

// Status devolve a situação efetiva do plano do usuário (resolver puro).
func (uc *SubscriptionUseCase) Status(userID string) (*dto.SubscriptionStatusResponse, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	st := subscription.Resolve(profile.ActivePlan, profile.CreatedAt, uc.now())
	return &dto.SubscriptionStatusResponse{
		ActivePlan:    string(st.Plan),
		DisplayStatus: st.DisplayStatus,
		IsExpired:     st.Expired,
		DaysLeft:      st.DaysLeft,
	}, nil
}

// PlanActive informa se o usuário ainda pode acessar as rotas protegidas
// pelo plano (usado pelo middleware de plano).
func (uc *SubscriptionUseCase) PlanActive(userID string) (bool, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}
	st := subscription.Resolve(profile.ActivePlan, profile.CreatedAt, uc.now())
	return !st.Expired, nil
}

// Checkout inicia o pagamento do plano escolhido no provedor escolhido.
//
// Assimetria preservada do produto: o Mensal via Mercado Pago não existe
// (só o preapproval Anual está cadastrado lá); o plano Mensal segue pela
// Stripe. O initiator do Mercado Pago rejeita Mensal com ErrInvalidInput.
func (uc *SubscriptionUseCase) Checkout(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	plan := entity.Plan(in.Plan)
	if !plan.Paid() {
		return nil, domain.ErrInvalidInput
	}
	provider, ok := uc.providers[in.Provider]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	amount, err := PlanAmount(plan)
	if err != nil {
		return nil, err
	}
	handle, err := provider.Initiate(ctx, InitiateRequest{UserID: userID, Plan: plan, Amount: amount})
	if err != nil {
		return nil, err
	}
	return &dto.CheckoutResponse{
		Provider:     handle.Provider,
		RedirectURL:  handle.RedirectURL,
		ClientSecret: handle.ClientSecret,
	}, nil
}
