package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/reports"
)

// ReportHandler download dos relatórios em PDF (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Finance godoc
// @Summary      Relatório financeiro em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  true  "Data inicial (2006-01-02)"
// @Param        to    query  string  true  "Data final (2006-01-02)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/finance [get]
func (h *ReportHandler) Finance(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, use 2006-01-02"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, use 2006-01-02"})
	}
	// Incluir o dia final inteiro.
	to = to.Add(24*time.Hour - time.Nanosecond)

	pdf, filename, err := h.uc.FinancePDF(c.Context(), GetUserID(c), from, to)
	if err != nil {
		return mapCrudError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// Members godoc
// @Summary      Relatório de membros em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/members [get]
func (h *ReportHandler) Members(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.MembersPDF(c.Context(), GetUserID(c))
	if err != nil {
		return mapCrudError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
