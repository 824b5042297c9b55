package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
)

// DashboardHandler resumo financeiro do mês corrente (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Totais do mês: entradas, saídas, saldo e membros
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetUserID(c))
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}
