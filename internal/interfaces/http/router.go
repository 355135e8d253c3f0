package http

import (
	"github.com/gofiber/fiber/v2"

	appreport "github.com/frontdesk/ingresos-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appreport.DashboardUseCase
	ExcelUC     *appreport.ExcelUseCase
	PDFUC       *appreport.PDFUseCase
	MovementsUC *appreport.MovementsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	reportHandler := NewReportHandler(deps.DashboardUC, deps.ExcelUC, deps.PDFUC)
	api.Get("/dashboard", reportHandler.Dashboard)

	reports := api.Group("/reports")
	reports.Get("/excel", reportHandler.Excel)
	reports.Get("/pdf", reportHandler.PDF)

	movementHandler := NewMovementHandler(deps.MovementsUC)
	api.Get("/movements", movementHandler.List)
}
