package report

import (
	"context"
	"fmt"
	"time"

	"github.com/frontdesk/ingresos-api/internal/application/ingest"
	domreport "github.com/frontdesk/ingresos-api/internal/domain/report"
)

// PDFUseCase genera el reporte PDF de movimientos.
type PDFUseCase struct {
	source     MovementSource
	normalizer *ingest.Normalizer
	opts       domreport.Options
	generator  ReportPDFGenerator
	now        func() time.Time
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(source MovementSource, normalizer *ingest.Normalizer, opts domreport.Options, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{
		source:     source,
		normalizer: normalizer,
		opts:       opts,
		generator:  generator,
		now:        time.Now,
	}
}

// Build genera el documento y devuelve su nombre y contenido.
// Nombre: Reporte_Movimientos_<fecha>_<hora>.pdf.
func (uc *PDFUseCase) Build(ctx context.Context, criteria Criteria) (string, []byte, error) {
	raws, err := uc.source.FetchMovements(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("pdf: obtener movimientos: %w", err)
	}

	movs, _ := uc.normalizer.Normalize(raws)
	movs = criteria.Apply(movs)
	totals := domreport.Aggregate(movs, uc.opts)

	now := uc.now()
	generadoEn := now.Format("2006-01-02 15:04")
	rep := BuildPDFReport(movs, totals, generadoEn, criteria.Label())

	content, err := uc.generator.Generate(ctx, rep)
	if err != nil {
		return "", nil, fmt.Errorf("pdf: generar documento: %w", err)
	}

	filename := fmt.Sprintf("Reporte_Movimientos_%s_%s.pdf",
		now.Format("2006-01-02"), now.Format("15-04"))
	return filename, content, nil
}
