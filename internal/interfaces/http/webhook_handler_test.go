package http_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	apphttp "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/interfaces/http"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dublês: provedor de pagamento e repositórios em memória
// ──────────────────────────────────────────────────────────────────────────────

type webhookStubProvider struct {
	name string
	upd  *billing.PlanUpdate
	err  error
}

func (s *webhookStubProvider) Name() string { return s.name }

func (s *webhookStubProvider) Initiate(context.Context, billing.InitiateRequest) (*billing.CheckoutHandle, error) {
	return nil, domain.ErrProviderNotConfigured
}

func (s *webhookStubProvider) Reconcile(context.Context, billing.RawEvent) (*billing.PlanUpdate, error) {
	return s.upd, s.err
}

type memProfileRepo struct{ updates int }

func (r *memProfileRepo) Create(*entity.Profile) error            { return nil }
func (r *memProfileRepo) GetByID(string) (*entity.Profile, error) { return nil, nil }
func (r *memProfileRepo) UpdateSettings(_, _, _ string) error     { return nil }
func (r *memProfileRepo) UpdateActivePlan(string, entity.Plan) error {
	r.updates++
	return nil
}

type memUserRepo struct{}

func (memUserRepo) Create(*entity.User) error                { return nil }
func (memUserRepo) GetByID(string) (*entity.User, error)     { return nil, nil }
func (memUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }

type memEventRepo struct{}

func (memEventRepo) Exists(string, string) (bool, error) { return false, nil }
func (memEventRepo) Record(*entity.WebhookEvent) error   { return nil }

// buildWebhookApp monta a rota pública de webhook com o provedor dublê.
func buildWebhookApp(p billing.PaymentProvider) (*fiber.App, *memProfileRepo) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	profiles := &memProfileRepo{}
	uc := billing.NewReconcileUseCase([]billing.PaymentProvider{p}, profiles, memUserRepo{}, memEventRepo{}, log)
	h := apphttp.NewWebhookHandler(uc, log)

	app := fiber.New()
	app.Post("/api/webhooks/:provider", h.Handle)
	return app, profiles
}

func postWebhook(t *testing.T, app *fiber.App, provider string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/"+provider, bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests: mapeamento do desfecho do reconciliador para o status HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Evento reconciliado e persistido → HTTP 200 {"status":"ok"}.
func TestWebhookHandler_EventoProcessado_Retorna200(t *testing.T) {
	app, profiles := buildWebhookApp(&webhookStubProvider{name: "stripe", upd: &billing.PlanUpdate{
		EventID: "evt_1",
		UserID:  "user-42",
		Plan:    entity.PlanAnual,
		Persist: true,
	}})

	resp := postWebhook(t, app, "stripe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, profiles.updates)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"ok"`)
}

// Evento irrelevante também é reconhecido com 200 para o provedor não reenviar.
func TestWebhookHandler_EventoIrrelevante_Retorna200(t *testing.T) {
	app, profiles := buildWebhookApp(&webhookStubProvider{name: "stripe", upd: nil})

	resp := postWebhook(t, app, "stripe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, profiles.updates)
}

func TestWebhookHandler_ProvedorDesconhecido_Retorna404(t *testing.T) {
	app, _ := buildWebhookApp(&webhookStubProvider{name: "stripe"})

	resp := postWebhook(t, app, "paypal")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNKNOWN_PROVIDER")
}

func TestWebhookHandler_AssinaturaInvalida_Retorna401(t *testing.T) {
	app, _ := buildWebhookApp(&webhookStubProvider{name: "stripe", err: domain.ErrInvalidSignature})

	resp := postWebhook(t, app, "stripe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_SIGNATURE")
}

// PagBank não envia webhooks reconciliáveis neste fluxo → HTTP 501.
func TestWebhookHandler_ReconciliadorNaoSuportado_Retorna501(t *testing.T) {
	app, _ := buildWebhookApp(&webhookStubProvider{name: "pagbank", err: domain.ErrReconcilerNotSupported})

	resp := postWebhook(t, app, "pagbank")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_SUPPORTED")
}

// Erro de infraestrutura → HTTP 500; o provedor reenvia e a deduplicação
// segura a repetição.
func TestWebhookHandler_ErroInterno_Retorna500(t *testing.T) {
	app, _ := buildWebhookApp(&webhookStubProvider{name: "stripe", err: errors.New("db indisponível")})

	resp := postWebhook(t, app, "stripe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
