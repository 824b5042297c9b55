package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
)

var _ billing.PaymentProvider = (*PagBankProvider)(nil)

// PagBankConfig parâmetros do provedor.
type PagBankConfig struct {
	Token      string // bearer da conta PagBank
	BaseURL    string // https://api.pagseguro.com (sobrescrito em testes)
	AppBaseURL string // URL pública do app para o redirect pós-pagamento
}

// PagBankProvider cria checkouts de cobrança no PagBank. A reconciliação
// por webhook ainda não existe neste provedor: Reconcile devolve
// ErrReconcilerNotSupported até o webhook ser cadastrado, simetricamente
// aos outros dois.
type PagBankProvider struct {
	cfg  PagBankConfig
	http *http.Client
}

// NewPagBankProvider constrói o provedor.
func NewPagBankProvider(cfg PagBankConfig) *PagBankProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.pagseguro.com"
	}
	return &PagBankProvider{cfg: cfg, http: &http.Client{Timeout: 15 * time.Second}}
}

// Name identifica o provedor nas rotas e no checkout.
func (p *PagBankProvider) Name() string { return billing.ProviderPagBank }

// checkoutRequest corpo de POST /checkouts.
type checkoutRequest struct {
	ReferenceID string         `json:"reference_id"`
	RedirectURL string         `json:"redirect_url"`
	Items       []checkoutItem `json:"items"`
}

type checkoutItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"` // centavos
}

// checkoutResponse resposta de POST /checkouts: a URL de pagamento vem na
// coleção de links (rel=CHECKOUT) ou, em algumas versões, no campo plano.
type checkoutResponse struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
	Links       []struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"links"`
	ErrorMessages []struct {
		Description string `json:"description"`
	} `json:"error_messages"`
}

// Initiate cria a cobrança com reference_id = userID e devolve a URL de
// checkout extraída da resposta.
func (p *PagBankProvider) Initiate(ctx context.Context, req billing.InitiateRequest) (*billing.CheckoutHandle, error) {
	if p.cfg.Token == "" {
		return nil, domain.ErrProviderNotConfigured
	}
	if req.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	payload := checkoutRequest{
		ReferenceID: req.UserID,
		RedirectURL: p.cfg.AppBaseURL + "/assinaturas?pagbank_status=success",
		Items: []checkoutItem{{
			Name:       "Plano " + string(req.Plan),
			Quantity:   1,
			UnitAmount: MinorUnits(req.Amount),
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("pagbank: serializar checkout: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/checkouts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("pagbank: montar requisição: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.Token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("pagbank: criar checkout: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{Provider: p.Name(), StatusCode: resp.StatusCode, Message: upstreamMessage(respBody)}
	}

	var out checkoutResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("pagbank: decodificar resposta: %w", err)
	}
	for _, l := range out.Links {
		if l.Rel == "CHECKOUT" && l.Href != "" {
			return &billing.CheckoutHandle{Provider: p.Name(), RedirectURL: l.Href}, nil
		}
	}
	if out.CheckoutURL != "" {
		return &billing.CheckoutHandle{Provider: p.Name(), RedirectURL: out.CheckoutURL}, nil
	}
	return nil, domain.ErrMissingCheckoutURL
}

// Reconcile não é suportado: o webhook do PagBank ainda não foi cadastrado.
func (p *PagBankProvider) Reconcile(_ context.Context, _ billing.RawEvent) (*billing.PlanUpdate, error) {
	return nil, domain.ErrReconcilerNotSupported
}

// upstreamMessage extrai a mensagem de erro do corpo, com fallback no corpo cru.
func upstreamMessage(body []byte) string {
	var out checkoutResponse
	if err := json.Unmarshal(body, &out); err == nil && len(out.ErrorMessages) > 0 {
		return out.ErrorMessages[0].Description
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return string(body)
}
