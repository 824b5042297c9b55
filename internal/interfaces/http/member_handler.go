package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
)

// MemberHandler maneja as peticiones HTTP para membros (protegido).
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler constrói o handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar membro
// @Tags         members
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveMemberRequest  true  "Dados do membro"
// @Success      201   {object}  dto.MemberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveMemberRequest
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
// @Summary      Listar membros
// @Tags         members
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.MemberResponse
// @Router       /api/members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetUserID(c), limit, offset)
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter membro por ID
// @Tags         members
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do membro"
// @Success      200  {object}  dto.MemberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/members/{id} [get]
func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return mapCrudError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar membro
// @Tags         members
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do membro"
// @Param        body  body  dto.SaveMemberRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.MemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/members/{id} [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveMemberRequest
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
// @Summary      Remover membro
// @Tags         members
// @Security     Bearer
// @Param        id  path  string  true  "ID do membro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/members/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return mapCrudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
