package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

var _ billing.PaymentProvider = (*StripeProvider)(nil)

// StripeProvider cria payment intents e reconcilia eventos
// checkout.session.completed verificados por assinatura.
type StripeProvider struct {
	sc            *client.API
	webhookSecret string
}

// NewStripeProvider constrói o provedor. Com secretKey vazio o provedor
// fica desabilitado: Initiate devolve ErrProviderNotConfigured.
func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	p := &StripeProvider{webhookSecret: webhookSecret}
	if secretKey != "" {
		p.sc = &client.API{}
		p.sc.Init(secretKey, nil)
	}
	return p
}

// Name identifica o provedor nas rotas e no checkout.
func (p *StripeProvider) Name() string { return billing.ProviderStripe }

// Initiate cria um payment intent em BRL e devolve o client secret para o
// formulário embutido (payment element).
func (p *StripeProvider) Initiate(_ context.Context, req billing.InitiateRequest) (*billing.CheckoutHandle, error) {
	if p.sc == nil {
		return nil, domain.ErrProviderNotConfigured
	}
	if req.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(req.Amount)),
		Currency: stripe.String(string(stripe.CurrencyBRL)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"user_id":   req.UserID,
			"plan_name": string(req.Plan),
		},
	}
	pi, err := p.sc.PaymentIntents.New(params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) {
			return nil, &domain.UpstreamError{Provider: p.Name(), StatusCode: se.HTTPStatusCode, Message: se.Msg}
		}
		return nil, fmt.Errorf("stripe: criar payment intent: %w", err)
	}
	return &billing.CheckoutHandle{Provider: p.Name(), ClientSecret: pi.ClientSecret}, nil
}

// Reconcile verifica a assinatura do evento bruto e interpreta
// checkout.session.completed. O usuário vem de client_reference_id; sem
// ele, o email do pagador fica no PlanUpdate para o lookup administrativo.
// metadata.plan_name Mensal/Anual mapeia direto; qualquer outro valor cai
// no Experimental (ParsePlan).
func (p *StripeProvider) Reconcile(_ context.Context, ev billing.RawEvent) (*billing.PlanUpdate, error) {
	event, err := webhook.ConstructEvent(ev.Body, ev.Signature, p.webhookSecret)
	if err != nil {
		return nil, domain.ErrInvalidSignature
	}
	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("stripe: decodificar checkout session: %w", err)
	}

	email := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		email = session.CustomerDetails.Email
	}

	return &billing.PlanUpdate{
		EventID:   event.ID,
		EventType: string(event.Type),
		UserID:    session.ClientReferenceID,
		Email:     email,
		Plan:      entity.ParsePlan(session.Metadata["plan_name"]),
		Persist:   true,
	}, nil
}
