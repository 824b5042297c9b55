package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/logger"
)

// ─── Dublês ───

// stubProvider devolve o PlanUpdate/erro configurado, sem rede.
type stubProvider struct {
	name string
	upd  *billing.PlanUpdate
	err  error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Initiate(context.Context, billing.InitiateRequest) (*billing.CheckoutHandle, error) {
	return nil, domain.ErrProviderNotConfigured
}

func (s *stubProvider) Reconcile(context.Context, billing.RawEvent) (*billing.PlanUpdate, error) {
	return s.upd, s.err
}

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
	updates  []string // "userID:plan" na ordem das escritas
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*entity.Profile{}}
}

func (r *fakeProfileRepo) Create(p *entity.Profile) error { r.profiles[p.ID] = p; return nil }

func (r *fakeProfileRepo) GetByID(id string) (*entity.Profile, error) {
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) UpdateSettings(id, churchName, theme string) error { return nil }

func (r *fakeProfileRepo) UpdateActivePlan(id string, plan entity.Plan) error {
	r.updates = append(r.updates, id+":"+string(plan))
	if p, ok := r.profiles[id]; ok {
		p.ActivePlan = plan
	}
	return nil
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(*entity.User) error            { return nil }
func (r *fakeUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

type fakeEventRepo struct {
	seen     map[string]bool // provider:eventID
	recorded []*entity.WebhookEvent
}

func newFakeEventRepo() *fakeEventRepo { return &fakeEventRepo{seen: map[string]bool{}} }

func (r *fakeEventRepo) Exists(provider, eventID string) (bool, error) {
	return r.seen[provider+":"+eventID], nil
}

func (r *fakeEventRepo) Record(ev *entity.WebhookEvent) error {
	r.seen[ev.Provider+":"+ev.EventID] = true
	r.recorded = append(r.recorded, ev)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newReconcileFixture(p *stubProvider) (*billing.ReconcileUseCase, *fakeProfileRepo, *fakeUserRepo, *fakeEventRepo) {
	profiles := newFakeProfileRepo()
	users := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	events := newFakeEventRepo()
	uc := billing.NewReconcileUseCase([]billing.PaymentProvider{p}, profiles, users, events, testLogger())
	return uc, profiles, users, events
}

// ─── Handle ───

func TestReconcile_PersistePlanoERegistraEvento(t *testing.T) {
	p := &stubProvider{name: "stripe", upd: &billing.PlanUpdate{
		EventID:   "evt_1",
		EventType: "checkout.session.completed",
		UserID:    "user-42",
		Plan:      entity.PlanAnual,
		Persist:   true,
	}}
	uc, profiles, _, events := newReconcileFixture(p)
	profiles.profiles["user-42"] = &entity.Profile{ID: "user-42", ActivePlan: entity.PlanExperimental, CreatedAt: time.Now()}

	err := uc.Handle(context.Background(), "stripe", billing.RawEvent{})
	require.NoError(t, err)

	assert.Equal(t, []string{"user-42:Anual"}, profiles.updates)
	require.Len(t, events.recorded, 1)
	assert.Equal(t, "stripe", events.recorded[0].Provider)
	assert.Equal(t, "evt_1", events.recorded[0].EventID)
	assert.Equal(t, "checkout.session.completed", events.recorded[0].EventType)
	assert.NotEmpty(t, events.recorded[0].ID)
}

func TestReconcile_ProvedorDesconhecido(t *testing.T) {
	uc, _, _, _ := newReconcileFixture(&stubProvider{name: "stripe"})

	err := uc.Handle(context.Background(), "paypal", billing.RawEvent{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReconcile_AssinaturaInvalidaPropaga(t *testing.T) {
	uc, profiles, _, _ := newReconcileFixture(&stubProvider{name: "stripe", err: domain.ErrInvalidSignature})

	err := uc.Handle(context.Background(), "stripe", billing.RawEvent{})
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	assert.Empty(t, profiles.updates)
}

// Evento não relevante: o provedor devolve nil e o caso de uso reconhece
// sem tocar no banco.
func TestReconcile_EventoIrrelevanteIgnorado(t *testing.T) {
	uc, profiles, _, events := newReconcileFixture(&stubProvider{name: "stripe", upd: nil})

	err := uc.Handle(context.Background(), "stripe", billing.RawEvent{})
	require.NoError(t, err)
	assert.Empty(t, profiles.updates)
	assert.Empty(t, events.recorded)
}

// Entrega repetida do mesmo evento não regrava o plano.
func TestReconcile_EventoRepetidoDeduplicado(t *testing.T) {
	p := &stubProvider{name: "mercadopago", upd: &billing.PlanUpdate{
		EventID: "pre-1:authorized",
		UserID:  "user-42",
		Plan:    entity.PlanAnual,
		Persist: true,
	}}
	uc, profiles, _, events := newReconcileFixture(p)

	require.NoError(t, uc.Handle(context.Background(), "mercadopago", billing.RawEvent{}))
	require.NoError(t, uc.Handle(context.Background(), "mercadopago", billing.RawEvent{}))

	assert.Equal(t, []string{"user-42:Anual"}, profiles.updates)
	assert.Len(t, events.recorded, 1)
}

// Fallback da Stripe: evento sem client_reference_id resolve pelo email.
func TestReconcile_ResolveUsuarioPorEmail(t *testing.T) {
	p := &stubProvider{name: "stripe", upd: &billing.PlanUpdate{
		EventID: "evt_2",
		Email:   "pastor@igreja.com",
		Plan:    entity.PlanMensal,
		Persist: true,
	}}
	uc, profiles, users, _ := newReconcileFixture(p)
	users.byEmail["pastor@igreja.com"] = &entity.User{ID: "user-77", Email: "pastor@igreja.com"}

	err := uc.Handle(context.Background(), "stripe", billing.RawEvent{})
	require.NoError(t, err)
	assert.Equal(t, []string{"user-77:Mensal"}, profiles.updates)
}

// Sem referência resolvível: ack sem gravar, para o provedor parar de reenviar.
func TestReconcile_UsuarioNaoResolvivel(t *testing.T) {
	p := &stubProvider{name: "stripe", upd: &billing.PlanUpdate{
		EventID: "evt_3",
		Email:   "desconhecido@igreja.com",
		Plan:    entity.PlanMensal,
		Persist: true,
	}}
	uc, profiles, _, events := newReconcileFixture(p)

	err := uc.Handle(context.Background(), "stripe", billing.RawEvent{})
	require.NoError(t, err)
	assert.Empty(t, profiles.updates)
	assert.Empty(t, events.recorded)
}

// Notificação pendente (Persist=false) registra o evento mas não escreve
// o plano; a confirmação chega depois com outro status.
func TestReconcile_PendenteNaoPersiste(t *testing.T) {
	p := &stubProvider{name: "mercadopago", upd: &billing.PlanUpdate{
		EventID: "pre-9:pending",
		UserID:  "user-42",
		Plan:    entity.PlanExperimental,
		Persist: false,
	}}
	uc, profiles, _, events := newReconcileFixture(p)

	err := uc.Handle(context.Background(), "mercadopago", billing.RawEvent{})
	require.NoError(t, err)
	assert.Empty(t, profiles.updates)
	require.Len(t, events.recorded, 1)
	assert.Equal(t, "pre-9:pending", events.recorded[0].EventID)
}
