package report

import (
	"fmt"
	"time"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
	"github.com/frontdesk/ingresos-api/internal/domain"
	"github.com/frontdesk/ingresos-api/internal/domain/entity"
)

// Criteria filtro de los reportes: rango de fechas sobre la fecha de pago.
// Límites nil significan "sin acotar". To ya viene ajustado a fin de día para
// que la fecha final sea inclusiva.
type Criteria struct {
	From *time.Time
	To   *time.Time
}

// CriteriaFromQuery interpreta los parámetros from/to (YYYY-MM-DD) y ajusta
// el límite superior a las 23:59:59 del día indicado.
func CriteriaFromQuery(q dto.DateRangeQuery) (Criteria, error) {
	var c Criteria

	if q.From != "" {
		t, err := time.Parse("2006-01-02", q.From)
		if err != nil {
			return c, fmt.Errorf("%w: from %q", domain.ErrInvalidDateRange, q.From)
		}
		c.From = &t
	}
	if q.To != "" {
		t, err := time.Parse("2006-01-02", q.To)
		if err != nil {
			return c, fmt.Errorf("%w: to %q", domain.ErrInvalidDateRange, q.To)
		}
		end := t.Add(24*time.Hour - time.Second)
		c.To = &end
	}
	if c.From != nil && c.To != nil && c.From.After(*c.To) {
		return c, fmt.Errorf("%w: from posterior a to", domain.ErrInvalidDateRange)
	}
	return c, nil
}

// Matches reporta si el movimiento cae dentro del rango. Con rango definido,
// un movimiento sin fecha de pago queda fuera.
func (c Criteria) Matches(m entity.Movement) bool {
	if c.From == nil && c.To == nil {
		return true
	}
	if m.PaymentDate == nil {
		return false
	}
	if c.From != nil && m.PaymentDate.Before(*c.From) {
		return false
	}
	if c.To != nil && m.PaymentDate.After(*c.To) {
		return false
	}
	return true
}

// Apply filtra la lista conservando el orden original.
func (c Criteria) Apply(movs []entity.Movement) []entity.Movement {
	if c.From == nil && c.To == nil {
		return movs
	}
	out := make([]entity.Movement, 0, len(movs))
	for _, m := range movs {
		if c.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// Label etiqueta legible del período para encabezados de reporte.
func (c Criteria) Label() string {
	switch {
	case c.From != nil && c.To != nil:
		return c.From.Format("2006-01-02") + " a " + c.To.Format("2006-01-02")
	case c.From != nil:
		return "desde " + c.From.Format("2006-01-02")
	case c.To != nil:
		return "hasta " + c.To.Format("2006-01-02")
	}
	return ""
}
