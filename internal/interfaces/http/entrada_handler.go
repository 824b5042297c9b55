package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
)

// EntradaHandler maneja dízimos e ofertas (protegido).
type EntradaHandler struct {
	uc *usecase.EntradaUseCase
}

// NewEntradaHandler constrói o handler.
func NewEntradaHandler(uc *usecase.EntradaUseCase) *EntradaHandler {
	return &EntradaHandler{uc: uc}
}

// Create godoc
// @Summary      Lançar dízimo ou oferta
// @Tags         entradas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveEntradaRequest  true  "tipo (dizimo, oferta), valor, date"
// @Success      201   {object}  dto.EntradaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entradas [post]
func (h *EntradaHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveEntradaRequest
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
// @Summary      Listar entradas
// @Tags         entradas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EntradaResponse
// @Router       /api/entradas [get]
func (h *EntradaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar entrada
// @Tags         entradas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da entrada"
// @Param        body  body  dto.SaveEntradaRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.EntradaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [put]
func (h *EntradaHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveEntradaRequest
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
// @Summary      Remover entrada
// @Tags         entradas
// @Security     Bearer
// @Param        id  path  string  true  "ID da entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [delete]
func (h *EntradaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return mapCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
