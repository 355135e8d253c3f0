package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
	appreport "github.com/frontdesk/ingresos-api/internal/application/report"
	"github.com/frontdesk/ingresos-api/internal/domain"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ReportHandler maneja los endpoints del dashboard y los reportes exportables.
type ReportHandler struct {
	dashboard *appreport.DashboardUseCase
	excel     *appreport.ExcelUseCase
	pdf       *appreport.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(dashboard *appreport.DashboardUseCase, excel *appreport.ExcelUseCase, pdf *appreport.PDFUseCase) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, excel: excel, pdf: pdf}
}

// Dashboard devuelve el resumen financiero del período solicitado.
// GET /api/dashboard?from=2025-01-01&to=2025-01-31
//
// Ambos parámetros son opcionales; sin rango se consideran todos los
// movimientos. El límite superior es inclusivo hasta el fin del día.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return badRange(c, err)
	}

	view, err := h.dashboard.Build(c.Context(), criteria)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(view)
}

// Excel descarga el libro "Dashboard General" como adjunto .xlsx.
// GET /api/reports/excel?from=...&to=...
func (h *ReportHandler) Excel(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return badRange(c, err)
	}

	filename, content, err := h.excel.Build(c.Context(), criteria)
	if err != nil {
		return upstreamOrInternal(c, err)
	}

	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}

// PDF descarga el Reporte de Movimientos como adjunto .pdf.
// GET /api/reports/pdf?from=...&to=...
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return badRange(c, err)
	}

	filename, content, err := h.pdf.Build(c.Context(), criteria)
	if err != nil {
		return upstreamOrInternal(c, err)
	}

	c.Set(fiber.HeaderContentType, mimePDF)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}

// ── Helpers compartidos ───────────────────────────────────────────────────────

func parseCriteria(c *fiber.Ctx) (appreport.Criteria, error) {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return appreport.Criteria{}, domain.ErrInvalidDateRange
	}
	return appreport.CriteriaFromQuery(q)
}

func badRange(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_DATE_RANGE", Message: err.Error(),
	})
}

func upstreamOrInternal(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUpstream) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM", Message: "la API de movimientos no está disponible",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
