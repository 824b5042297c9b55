package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/infrastructure/payment"
)

const stripeWebhookSecret = "whsec_test"

// signStripePayload monta o header stripe-signature como o provedor faz:
// HMAC-SHA256 de "<timestamp>.<payload>" com o webhook secret.
func signStripePayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutCompletedPayload(clientRef, email, planName string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"api_version": %q,
		"data": {
			"object": {
				"id": "cs_1",
				"client_reference_id": %q,
				"customer_email": "",
				"customer_details": {"email": %q},
				"metadata": {"plan_name": %q}
			}
		}
	}`, stripe.APIVersion, clientRef, email, planName))
}

func TestStripe_Reconcile_CheckoutCompleted(t *testing.T) {
	p := payment.NewStripeProvider("sk_test", stripeWebhookSecret)
	payload := checkoutCompletedPayload("user-42", "pastor@igreja.com", "Anual")

	upd, err := p.Reconcile(context.Background(), billing.RawEvent{
		Body:      payload,
		Signature: signStripePayload(payload, stripeWebhookSecret),
	})
	require.NoError(t, err)
	require.NotNil(t, upd)
	assert.Equal(t, "evt_1", upd.EventID)
	assert.Equal(t, "checkout.session.completed", upd.EventType)
	assert.Equal(t, "user-42", upd.UserID)
	assert.Equal(t, "pastor@igreja.com", upd.Email)
	assert.Equal(t, entity.PlanAnual, upd.Plan)
	assert.True(t, upd.Persist)
}

// Sem client_reference_id o email do pagador fica disponível para o
// fallback de resolução no caso de uso.
func TestStripe_Reconcile_SemClientReference(t *testing.T) {
	p := payment.NewStripeProvider("sk_test", stripeWebhookSecret)
	payload := checkoutCompletedPayload("", "pastor@igreja.com", "Mensal")

	upd, err := p.Reconcile(context.Background(), billing.RawEvent{
		Body:      payload,
		Signature: signStripePayload(payload, stripeWebhookSecret),
	})
	require.NoError(t, err)
	require.NotNil(t, upd)
	assert.Empty(t, upd.UserID)
	assert.Equal(t, "pastor@igreja.com", upd.Email)
	assert.Equal(t, entity.PlanMensal, upd.Plan)
}

// plan_name desconhecido cai no Experimental pelo ParsePlan.
func TestStripe_Reconcile_PlanoDesconhecido(t *testing.T) {
	p := payment.NewStripeProvider("sk_test", stripeWebhookSecret)
	payload := checkoutCompletedPayload("user-42", "", "Premium")

	upd, err := p.Reconcile(context.Background(), billing.RawEvent{
		Body:      payload,
		Signature: signStripePayload(payload, stripeWebhookSecret),
	})
	require.NoError(t, err)
	require.NotNil(t, upd)
	assert.Equal(t, entity.PlanExperimental, upd.Plan)
}

func TestStripe_Reconcile_EventoIrrelevante(t *testing.T) {
	p := payment.NewStripeProvider("sk_test", stripeWebhookSecret)
	payload := []byte(fmt.Sprintf(`{"id": "evt_2", "type": "invoice.paid", "api_version": %q, "data": {"object": {}}}`, stripe.APIVersion))

	upd, err := p.Reconcile(context.Background(), billing.RawEvent{
		Body:      payload,
		Signature: signStripePayload(payload, stripeWebhookSecret),
	})
	require.NoError(t, err)
	assert.Nil(t, upd)
}

func TestStripe_Reconcile_AssinaturaInvalida(t *testing.T) {
	p := payment.NewStripeProvider("sk_test", stripeWebhookSecret)
	payload := checkoutCompletedPayload("user-42", "", "Anual")

	_, err := p.Reconcile(context.Background(), billing.RawEvent{
		Body:      payload,
		Signature: signStripePayload(payload, "whsec_outro"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	_, err = p.Reconcile(context.Background(), billing.RawEvent{Body: payload, Signature: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestStripe_Initiate_SemCredencial(t *testing.T) {
	p := payment.NewStripeProvider("", "")

	_, err := p.Initiate(context.Background(), billing.InitiateRequest{UserID: "user-42"})
	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
}
