package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/frontdesk/ingresos-api/internal/application/ingest"
	appreport "github.com/frontdesk/ingresos-api/internal/application/report"
	domreport "github.com/frontdesk/ingresos-api/internal/domain/report"
	infraexcel "github.com/frontdesk/ingresos-api/internal/infrastructure/excel"
	"github.com/frontdesk/ingresos-api/internal/infrastructure/movapi"
	infrapdf "github.com/frontdesk/ingresos-api/internal/infrastructure/pdf"
	httpRouter "github.com/frontdesk/ingresos-api/internal/interfaces/http"
	"github.com/frontdesk/ingresos-api/pkg/config"
	"github.com/frontdesk/ingresos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando aplicación")

	// Fuente de movimientos: la API del PMS de recepción.
	source := movapi.NewClient(
		cfg.Upstream.BaseURL,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
	)
	normalizer := ingest.NewNormalizer()

	opts := domreport.Options{Nights: nightsStrategy(cfg.Report.NightsStrategy)}
	dashboardUC := appreport.NewDashboardUseCase(source, normalizer, opts)
	excelUC := appreport.NewExcelUseCase(source, normalizer, opts, infraexcel.NewExcelizeGenerator())
	pdfUC := appreport.NewPDFUseCase(source, normalizer, opts, infrapdf.NewMarotoReportGenerator())
	movementsUC := appreport.NewMovementsUseCase(source, normalizer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los reportes PDF/Excel tardan más
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ingresos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ExcelUC:     excelUC,
		PDFUC:       pdfUC,
		MovementsUC: movementsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// nightsStrategy traduce el valor configurado; cualquier valor no reconocido
// cae en la estrategia por fechas.
func nightsStrategy(s string) domreport.NightsStrategy {
	if s == string(domreport.NightsFromField) {
		return domreport.NightsFromField
	}
	return domreport.NightsFromDates
}
