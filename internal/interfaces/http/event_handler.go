package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
)

// EventHandler maneja as peticiones HTTP para eventos da igreja (protegido).
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler constrói o handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Create godoc
// @Summary      Criar evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveEventRequest  true  "Dados do evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveEventRequest
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
// @Summary      Listar eventos
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EventResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do evento"
// @Param        body  body  dto.SaveEventRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.EventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveEventRequest
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
// @Summary      Remover evento
// @Tags         events
// @Security     Bearer
// @Param        id  path  string  true  "ID do evento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return mapCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
