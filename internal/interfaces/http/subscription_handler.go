package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/logger"
)

// SubscriptionHandler maneja status do plano e início de checkout (protegido).
type SubscriptionHandler struct {
	uc  *billing.SubscriptionUseCase
	log *logger.Logger
}

// NewSubscriptionHandler constrói o handler.
func NewSubscriptionHandler(uc *billing.SubscriptionUseCase, log *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, log: log}
}

// Status godoc
// @Summary      Situação do plano (trial/ativo/expirado)
// @Tags         subscriptions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubscriptionStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subscriptions/status [get]
func (h *SubscriptionHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Iniciar pagamento de assinatura
// @Tags         subscriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "provider (stripe, mercadopago, pagbank) e plan (Mensal, Anual)"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/subscriptions/checkout [post]
func (h *SubscriptionHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Checkout(c.Context(), GetUserID(c), in)
	if err != nil {
		var upstream *domain.UpstreamError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "provider ou plan inválido"})
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário não autenticado"})
		case errors.Is(err, domain.ErrProviderNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PROVIDER_NOT_CONFIGURED", Message: "provedor de pagamento indisponível"})
		case errors.Is(err, domain.ErrMissingCheckoutURL):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "o provedor não devolveu a URL de checkout"})
		case errors.As(err, &upstream):
			h.log.Error().Err(err).Str("provider", upstream.Provider).Msg("falha no provedor de pagamento")
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "falha ao iniciar o pagamento no provedor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
