package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
)

// CultoHandler maneja as peticiones HTTP para cultos (protegido).
type CultoHandler struct {
	uc *usecase.CultoUseCase
}

// NewCultoHandler constrói o handler.
func NewCultoHandler(uc *usecase.CultoUseCase) *CultoHandler {
	return &CultoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar culto
// @Tags         cultos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCultoRequest  true  "Dados do culto"
// @Success      201   {object}  dto.CultoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cultos [post]
func (h *CultoHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCultoRequest
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
// @Summary      Listar cultos
// @Tags         cultos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CultoResponse
// @Router       /api/cultos [get]
func (h *CultoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar culto
// @Tags         cultos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do culto"
// @Param        body  body  dto.SaveCultoRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.CultoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cultos/{id} [put]
func (h *CultoHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveCultoRequest
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
// @Summary      Remover culto
// @Tags         cultos
// @Security     Bearer
// @Param        id  path  string  true  "ID do culto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cultos/{id} [delete]
func (h *CultoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return mapCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
