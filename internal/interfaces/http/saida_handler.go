package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
)

// SaidaHandler maneja despesas (protegido).
type SaidaHandler struct {
	uc *usecase.SaidaUseCase
}

// NewSaidaHandler constrói o handler.
func NewSaidaHandler(uc *usecase.SaidaUseCase) *SaidaHandler {
	return &SaidaHandler{uc: uc}
}

// Create godoc
// @Summary      Lançar despesa
// @Tags         saidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSaidaRequest  true  "descricao, valor, date"
// @Success      201   {object}  dto.SaidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/saidas [post]
func (h *SaidaHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveSaidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar despesas
// @Tags         saidas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaidaResponse
// @Router       /api/saidas [get]
func (h *SaidaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar despesa
// @Tags         saidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da despesa"
// @Param        body  body  dto.SaveSaidaRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.SaidaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [put]
func (h *SaidaHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveSaidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover despesa
// @Tags         saidas
// @Security     Bearer
// @Param        id  path  string  true  "ID da despesa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [delete]
func (h *SaidaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return mapCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
