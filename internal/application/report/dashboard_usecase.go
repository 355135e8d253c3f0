package report

import (
	"context"
	"fmt"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
	"github.com/frontdesk/ingresos-api/internal/application/ingest"
	domreport "github.com/frontdesk/ingresos-api/internal/domain/report"
)

// DashboardUseCase construye el view-model del tablero general.
//
// Flujo: fetch → normalizar → filtrar por fecha de pago → agregar → armar
// DTO. Computación pura sobre la instantánea en memoria; sin estado entre
// peticiones.
type DashboardUseCase struct {
	source     MovementSource
	normalizer *ingest.Normalizer
	opts       domreport.Options
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source MovementSource, normalizer *ingest.Normalizer, opts domreport.Options) *DashboardUseCase {
	return &DashboardUseCase{source: source, normalizer: normalizer, opts: opts}
}

// Build genera el tablero para el rango indicado.
func (uc *DashboardUseCase) Build(ctx context.Context, criteria Criteria) (*dto.DashboardDTO, error) {
	raws, err := uc.source.FetchMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: obtener movimientos: %w", err)
	}

	movs, diags := uc.normalizer.Normalize(raws)
	movs = criteria.Apply(movs)
	totals := domreport.Aggregate(movs, uc.opts)

	return BuildDashboard(movs, totals, diags, criteria.Label()), nil
}
