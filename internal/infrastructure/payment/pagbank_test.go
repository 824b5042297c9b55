package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/infrastructure/payment"
)

func newPagBankProvider(baseURL string) *payment.PagBankProvider {
	return payment.NewPagBankProvider(payment.PagBankConfig{
		Token:      "pagbank-token",
		BaseURL:    baseURL,
		AppBaseURL: "https://app.example.com",
	})
}

func pagbankRequest() billing.InitiateRequest {
	return billing.InitiateRequest{
		UserID: "user-42",
		Plan:   entity.PlanMensal,
		Amount: decimal.RequireFromString("59.90"),
	}
}

func TestPagBank_Initiate_LinkCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer pagbank-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user-42", body["reference_id"])
		assert.Equal(t, "https://app.example.com/assinaturas?pagbank_status=success", body["redirect_url"])
		items := body["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, float64(5990), items[0].(map[string]any)["unit_amount"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": "chk-1",
			"links": [
				{"rel": "SELF", "href": "https://api.pagseguro.com/checkouts/chk-1"},
				{"rel": "CHECKOUT", "href": "https://pagamento.example.com/chk-1"}
			]
		}`))
	}))
	defer srv.Close()
	p := newPagBankProvider(srv.URL)

	out, err := p.Initiate(context.Background(), pagbankRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://pagamento.example.com/chk-1", out.RedirectURL)
	assert.Empty(t, out.ClientSecret)
}

// Algumas respostas trazem a URL no campo plano em vez da coleção de links.
func TestPagBank_Initiate_CheckoutURLPlano(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "chk-2", "checkout_url": "https://pagamento.example.com/chk-2"}`))
	}))
	defer srv.Close()
	p := newPagBankProvider(srv.URL)

	out, err := p.Initiate(context.Background(), pagbankRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://pagamento.example.com/chk-2", out.RedirectURL)
}

func TestPagBank_Initiate_SemURLNaResposta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "chk-3", "links": []}`))
	}))
	defer srv.Close()
	p := newPagBankProvider(srv.URL)

	_, err := p.Initiate(context.Background(), pagbankRequest())
	assert.ErrorIs(t, err, domain.ErrMissingCheckoutURL)
}

func TestPagBank_Initiate_ErroUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_messages": [{"description": "invalid token"}]}`))
	}))
	defer srv.Close()
	p := newPagBankProvider(srv.URL)

	_, err := p.Initiate(context.Background(), pagbankRequest())
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Equal(t, "invalid token", upstream.Message)
}

func TestPagBank_Initiate_SemToken(t *testing.T) {
	p := payment.NewPagBankProvider(payment.PagBankConfig{})

	_, err := p.Initiate(context.Background(), pagbankRequest())
	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
}

func TestPagBank_Reconcile_NaoSuportado(t *testing.T) {
	p := newPagBankProvider("")

	_, err := p.Reconcile(context.Background(), billing.RawEvent{Body: []byte("{}")})
	assert.ErrorIs(t, err, domain.ErrReconcilerNotSupported)
}
