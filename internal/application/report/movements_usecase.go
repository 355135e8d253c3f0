package report

import (
	"context"
	"fmt"
	"time"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
	"github.com/frontdesk/ingresos-api/internal/application/ingest"
	"github.com/frontdesk/ingresos-api/internal/domain/entity"
)

// MovementList respuesta de GET /api/movements: los movimientos ya
// normalizados junto con los diagnósticos de ingesta, para que el operador
// vea qué registros se degradaron o quedaron en cuarentena.
type MovementList struct {
	Items        []dto.MovementDTO  `json:"items"`
	Total        int                `json:"total"`
	Diagnosticos ingest.Diagnostics `json:"diagnosticos"`
}

// MovementsUseCase lista los movimientos normalizados.
type MovementsUseCase struct {
	source     MovementSource
	normalizer *ingest.Normalizer
}

// NewMovementsUseCase construye el caso de uso.
func NewMovementsUseCase(source MovementSource, normalizer *ingest.Normalizer) *MovementsUseCase {
	return &MovementsUseCase{source: source, normalizer: normalizer}
}

// List obtiene, normaliza y filtra la lista de movimientos.
func (uc *MovementsUseCase) List(ctx context.Context, criteria Criteria) (*MovementList, error) {
	raws, err := uc.source.FetchMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("movimientos: obtener del upstream: %w", err)
	}

	movs, diags := uc.normalizer.Normalize(raws)
	movs = criteria.Apply(movs)

	items := make([]dto.MovementDTO, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovementDTO(m))
	}

	return &MovementList{Items: items, Total: len(items), Diagnosticos: diags}, nil
}

func toMovementDTO(m entity.Movement) dto.MovementDTO {
	isoDate := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	}

	out := dto.MovementDTO{
		ID:             m.ID,
		Nombre:         m.GuestName,
		Habitacion:     m.Room.Number,
		TipoHabitacion: m.Room.Type,
		FechaPago:      isoDate(m.PaymentDate),
		CheckIn:        isoDate(m.CheckIn),
		CheckOut:       isoDate(m.CheckOut),
		Noches:         m.Nights,
		Concepto:       string(m.Concept),
		OTA:            string(m.OTAOrDefault()),
		Tipo:           string(m.Income.Type),
		Subtipo:        string(m.Income.Subtype),
		Monto:          m.Income.Amount,
	}
	for _, a := range m.Income.Authorizations {
		out.Autorizaciones = append(out.Autorizaciones, dto.AuthorizationDTO{
			Codigo: a.Code,
			Monto:  a.Amount,
		})
	}
	return out
}
