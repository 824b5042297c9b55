package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
)

// VisitorHandler maneja as peticiones HTTP para visitantes (protegido).
type VisitorHandler struct {
	uc *usecase.VisitorUseCase
}

// NewVisitorHandler constrói o handler.
func NewVisitorHandler(uc *usecase.VisitorUseCase) *VisitorHandler {
	return &VisitorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar visitante
// @Tags         visitors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveVisitorRequest  true  "Dados do visitante"
// @Success      201   {object}  dto.VisitorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visitors [post]
func (h *VisitorHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveVisitorRequest
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
// @Summary      Listar visitantes
// @Tags         visitors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VisitorResponse
// @Router       /api/visitors [get]
func (h *VisitorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar visitante
// @Tags         visitors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do visitante"
// @Param        body  body  dto.SaveVisitorRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.VisitorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/visitors/{id} [put]
func (h *VisitorHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveVisitorRequest
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
// @Summary      Remover visitante
// @Tags         visitors
// @Security     Bearer
// @Param        id  path  string  true  "ID do visitante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitors/{id} [delete]
func (h *VisitorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return mapCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
