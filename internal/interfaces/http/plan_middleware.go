package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
)

// planChecker é o contrato mínimo que o middleware precisa para verificar o
// plano. Implementado por *billing.SubscriptionUseCase; a interface evita o
// import circular.
type planChecker interface {
	PlanActive(userID string) (bool, error)
}

// RequirePlanActive devolve um middleware Fiber que bloqueia as rotas de
// gestão quando o período de teste expirou. Deve rodar DEPOIS de
// AuthMiddleware (precisa do user_id no contexto).
//
// Comportamento:
//   - 403 Forbidden → plano Experimental com os 14 dias vencidos.
//   - 503 Service Unavailable → falha de infraestrutura ao consultar o perfil.
//   - 401 se não houver user_id no contexto.
//
// As rotas de assinatura e o próprio perfil ficam fora do gate: o usuário
// expirado precisa delas para regularizar o pagamento.
func RequirePlanActive(checker planChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id não encontrado no token",
			})
		}

		active, err := checker.PlanActive(userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PLAN_CHECK_FAILED",
				Message: "não foi possível verificar o plano, tente novamente",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PLAN_EXPIRED",
				Message: "período de teste expirado; assine um plano para continuar",
			})
		}

		return c.Next()
	}
}
