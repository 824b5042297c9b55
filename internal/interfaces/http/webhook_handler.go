package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/logger"
)

// WebhookHandler recebe notificações de pagamento dos provedores (público,
// autenticado pela assinatura do próprio evento).
type WebhookHandler struct {
	uc  *billing.ReconcileUseCase
	log *logger.Logger
}

// NewWebhookHandler constrói o handler.
func NewWebhookHandler(uc *billing.ReconcileUseCase, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, log: log}
}

// Handle godoc
// @Summary      Webhook de pagamento (stripe, mercadopago, pagbank)
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        provider  path  string  true  "stripe | mercadopago | pagbank"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/webhooks/{provider} [post]
func (h *WebhookHandler) Handle(c *fiber.Ctx) error {
	provider := c.Params("provider")
	ev := billing.RawEvent{
		Body:      c.Body(),
		Signature: c.Get("Stripe-Signature"),
		Bearer:    bearerToken(c.Get("Authorization")),
	}

	err := h.uc.Handle(c.Context(), provider, ev)
	switch {
	case err == nil:
		countWebhookEvent(provider, "ok")
		return c.JSON(fiber.Map{"status": "ok"})
	case errors.Is(err, domain.ErrNotFound):
		countWebhookEvent(provider, "unknown_provider")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PROVIDER", Message: "provedor desconhecido"})
	case errors.Is(err, domain.ErrInvalidSignature):
		countWebhookEvent(provider, "invalid_signature")
		h.log.Warn().Str("provider", provider).Msg("webhook com assinatura inválida")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: "assinatura do evento inválida"})
	case errors.Is(err, domain.ErrReconcilerNotSupported):
		countWebhookEvent(provider, "not_supported")
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_SUPPORTED", Message: "este provedor não envia webhooks reconciliáveis"})
	default:
		countWebhookEvent(provider, "error")
		h.log.Error().Err(err).Str("provider", provider).Msg("falha ao processar webhook")
		// 500: o provedor reenvia o evento; a deduplicação segura a repetição.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao processar o evento"})
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
