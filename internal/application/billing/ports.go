package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// Nomes dos provedores (usados na rota do webhook e no CheckoutRequest).
const (
	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
	ProviderPagBank     = "pagbank"
)

// Preços dos planos em BRL (unidades maiores). Os initiators convertem
// para centavos quando o provedor exige unidades menores.
var (
	priceMensal = decimal.RequireFromString("59.90")
	priceAnual  = decimal.RequireFromString("599.90")
)

// PlanAmount devolve o preço do plano pago.
func PlanAmount(plan entity.Plan) (decimal.Decimal, error) {
	switch plan {
	case entity.PlanMensal:
		return priceMensal, nil
	case entity.PlanAnual:
		return priceAnual, nil
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}
}

// InitiateRequest pedido de início de pagamento para um provedor.
type InitiateRequest struct {
	UserID string
	Plan   entity.Plan
	Amount decimal.Decimal // unidades maiores (ex.: 59.90)
}

// CheckoutHandle é o que o cliente precisa para completar o pagamento:
// uma URL de redirect (Mercado Pago, PagBank) ou um client secret para o
// formulário embutido (Stripe). Exatamente um dos campos é preenchido.
type CheckoutHandle struct {
	Provider     string
	RedirectURL  string
	ClientSecret string
}

// RawEvent notificação bruta recebida no endpoint de webhook.
type RawEvent struct {
	Body      []byte
	Signature string // header stripe-signature
	Bearer    string // token bearer do header Authorization (Mercado Pago)
}

// PlanUpdate resultado da reconciliação de um evento: qual usuário passa a
// ter qual plano. UserID pode vir vazio com Email preenchido (fallback por
// email do Stripe); Persist=false reconhece o evento sem gravar nada
// (status pending/in_process).
type PlanUpdate struct {
	EventID   string
	EventType string
	UserID    string
	Email     string
	Plan      entity.Plan
	Persist   bool
}

// PaymentProvider capacidade comum dos três provedores de pagamento.
// Initiate traduz a seleção de plano em um handle de checkout; Reconcile
// autentica e interpreta uma notificação de webhook.
//
// Reconcile devolve (nil, nil) quando o evento não é relevante (topic ou
// tipo de evento ignorado) — o webhook responde 200 para o provedor não
// reenviar. Erros de assinatura devolvem domain.ErrInvalidSignature; o
// PagBank devolve domain.ErrReconcilerNotSupported (gap explícito, sem
// webhook de reconciliação neste provedor ainda).
type PaymentProvider interface {
	Name() string
	Initiate(ctx context.Context, req InitiateRequest) (*CheckoutHandle, error)
	Reconcile(ctx context.Context, ev RawEvent) (*PlanUpdate, error)
}
