package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// checkoutBaseURL é a página de checkout de assinaturas do Mercado Pago.
const checkoutBaseURL = "https://www.mercadopago.com.br/subscriptions/checkout"

var _ billing.PaymentProvider = (*MercadoPagoProvider)(nil)

// MercadoPagoConfig parâmetros do provedor.
type MercadoPagoConfig struct {
	AccessToken   string // token servidor-a-servidor para buscar preapprovals
	WebhookSecret string // segredo HS256 do token bearer das notificações
	PlanIDAnual   string // preapproval plan pré-cadastrado (Anual)
	PlanIDMensal  string // reservado; o Mensal segue via Stripe
	BaseURL       string // https://api.mercadopago.com (sobrescrito em testes)
}

// MercadoPagoProvider inicia checkouts por URL de redirect (o plano já está
// pré-cadastrado no provedor, sem chamada de rede na iniciação) e reconcilia
// notificações de preapproval.
type MercadoPagoProvider struct {
	cfg  MercadoPagoConfig
	http *http.Client
}

// NewMercadoPagoProvider constrói o provedor.
func NewMercadoPagoProvider(cfg MercadoPagoConfig) *MercadoPagoProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mercadopago.com"
	}
	return &MercadoPagoProvider{cfg: cfg, http: &http.Client{Timeout: 15 * time.Second}}
}

// Name identifica o provedor nas rotas e no checkout.
func (p *MercadoPagoProvider) Name() string { return billing.ProviderMercadoPago }

// Initiate monta a URL de redirect do checkout de assinatura. Só o plano
// Anual existe no Mercado Pago; Mensal devolve ErrInvalidInput (o produto
// encaminha o Mensal pela Stripe).
func (p *MercadoPagoProvider) Initiate(_ context.Context, req billing.InitiateRequest) (*billing.CheckoutHandle, error) {
	if req.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if req.Plan != entity.PlanAnual {
		return nil, domain.ErrInvalidInput
	}
	if p.cfg.PlanIDAnual == "" {
		return nil, domain.ErrProviderNotConfigured
	}

	q := url.Values{}
	q.Set("preapproval_plan_id", p.cfg.PlanIDAnual)
	q.Set("external_reference", req.UserID)
	return &billing.CheckoutHandle{
		Provider:    p.Name(),
		RedirectURL: checkoutBaseURL + "?" + q.Encode(),
	}, nil
}

// notificationClaims payload assinado da notificação: id do preapproval e topic.
type notificationClaims struct {
	jwt.RegisteredClaims
	ID    string `json:"id"`
	Topic string `json:"topic"`
}

// preapprovalDetail resposta de GET /preapproval/{id}.
type preapprovalDetail struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
	PreapprovalPlanID string `json:"preapproval_plan_id"`
}

// Reconcile valida o token bearer assinado, busca o preapproval completo no
// provedor e mapeia status + plano:
//
//	authorized + plan id conhecido        → Mensal/Anual
//	cancelled | paused | rejected         → Experimental
//	pending | in_process | desconhecido   → ack sem escrita
//
// Notificação com topic != preapproval ou sem external_reference é ignorada
// (ack 200, nada a reenviar).
func (p *MercadoPagoProvider) Reconcile(ctx context.Context, ev billing.RawEvent) (*billing.PlanUpdate, error) {
	if p.cfg.WebhookSecret == "" || p.cfg.AccessToken == "" {
		return nil, domain.ErrProviderNotConfigured
	}

	claims := &notificationClaims{}
	token, err := jwt.ParseWithClaims(ev.Bearer, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(p.cfg.WebhookSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidSignature
	}
	if claims.Topic != "preapproval" || claims.ID == "" {
		return nil, nil
	}

	detail, err := p.fetchPreapproval(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if detail.ExternalReference == "" {
		return nil, nil
	}

	upd := &billing.PlanUpdate{
		// O Mercado Pago não envia um id de evento próprio; a chave de
		// deduplicação é preapproval+status, então a reentrega do mesmo
		// desfecho é descartada sem bloquear transições futuras.
		EventID:   detail.ID + ":" + detail.Status,
		EventType: "preapproval." + detail.Status,
		UserID:    detail.ExternalReference,
	}

	switch detail.Status {
	case "authorized":
		// Plano pago exige o id do plano batendo com um dos cadastrados.
		// Sem id no detalhe nada é concedido, senão um plano não configurado
		// (constante vazia) casaria com o detalhe sem preapproval_plan_id.
		if detail.PreapprovalPlanID == "" {
			return nil, nil
		}
		switch detail.PreapprovalPlanID {
		case p.cfg.PlanIDAnual:
			upd.Plan, upd.Persist = entity.PlanAnual, true
		case p.cfg.PlanIDMensal:
			upd.Plan, upd.Persist = entity.PlanMensal, true
		default:
			return nil, nil
		}
	case "cancelled", "paused", "rejected":
		upd.Plan, upd.Persist = entity.PlanExperimental, true
	default:
		// pending, in_process: reconhece sem persistir
		upd.Persist = false
	}
	return upd, nil
}

// fetchPreapproval busca os detalhes do preapproval com o access token do servidor.
func (p *MercadoPagoProvider) fetchPreapproval(ctx context.Context, id string) (*preapprovalDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"/preapproval/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: montar requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.AccessToken)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: buscar preapproval: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{Provider: p.Name(), StatusCode: resp.StatusCode, Message: string(body)}
	}

	var detail preapprovalDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("mercadopago: decodificar preapproval: %w", err)
	}
	return &detail, nil
}
