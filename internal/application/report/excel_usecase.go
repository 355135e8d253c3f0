package report

import (
	"context"
	"fmt"
	"time"

	"github.com/frontdesk/ingresos-api/internal/application/ingest"
	domreport "github.com/frontdesk/ingresos-api/internal/domain/report"
)

const excelSheetName = "Dashboard General"

// ExcelUseCase genera el libro de Excel del tablero general.
type ExcelUseCase struct {
	source     MovementSource
	normalizer *ingest.Normalizer
	opts       domreport.Options
	workbook   WorkbookGenerator
	now        func() time.Time
}

// NewExcelUseCase construye el caso de uso.
func NewExcelUseCase(source MovementSource, normalizer *ingest.Normalizer, opts domreport.Options, workbook WorkbookGenerator) *ExcelUseCase {
	return &ExcelUseCase{
		source:     source,
		normalizer: normalizer,
		opts:       opts,
		workbook:   workbook,
		now:        time.Now,
	}
}

// Build genera el archivo y devuelve su nombre y contenido.
// Nombre: Dashboard_General_<fecha ISO>.xlsx.
func (uc *ExcelUseCase) Build(ctx context.Context, criteria Criteria) (string, []byte, error) {
	raws, err := uc.source.FetchMovements(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("excel: obtener movimientos: %w", err)
	}

	movs, _ := uc.normalizer.Normalize(raws)
	movs = criteria.Apply(movs)
	totals := domreport.Aggregate(movs, uc.opts)

	rows := BuildSheetRows(movs, totals)
	content, err := uc.workbook.Generate(excelSheetName, rows)
	if err != nil {
		return "", nil, fmt.Errorf("excel: generar libro: %w", err)
	}

	filename := fmt.Sprintf("Dashboard_General_%s.xlsx", uc.now().Format("2006-01-02"))
	return filename, content, nil
}
