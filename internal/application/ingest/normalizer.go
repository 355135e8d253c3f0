// Package ingest normaliza los movimientos crudos del API al esquema cerrado
// de dominio. Aquí ocurre todo el parseo de montos: a partir de esta frontera
// solo circulan decimales, nunca texto formateado.
package ingest

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
	"github.com/frontdesk/ingresos-api/internal/domain/entity"
	"github.com/frontdesk/ingresos-api/internal/domain/money"
	"github.com/frontdesk/ingresos-api/internal/domain/report"
)

// Warning un dato degradado que no impide el reporte: el campo afectado se
// contabiliza en 0 o se muestra vacío, y queda registro para el operador.
type Warning struct {
	MovementID string `json:"movement_id"`
	Field      string `json:"field"`
	Detail     string `json:"detail"`
}

// Quarantined un registro que no cumple el esquema y se excluye del reporte.
// Nunca se descarta en silencio: viaja en los diagnósticos con una etiqueta
// única para poder rastrearlo.
type Quarantined struct {
	Tag        string `json:"tag"`
	MovementID string `json:"movement_id"`
	Reason     string `json:"reason"`
}

// Diagnostics resultado observable de la ingesta.
type Diagnostics struct {
	Warnings    []Warning     `json:"advertencias,omitempty"`
	Quarantined []Quarantined `json:"cuarentena,omitempty"`
}

// Messages los diagnósticos como texto plano para el bloque de advertencias
// del tablero.
func (d Diagnostics) Messages() []string {
	var out []string
	for _, w := range d.Warnings {
		out = append(out, fmt.Sprintf("movimiento %s: %s (%s), se contabiliza en 0", w.MovementID, w.Detail, w.Field))
	}
	for _, q := range d.Quarantined {
		out = append(out, fmt.Sprintf("movimiento %s en cuarentena: %s", q.MovementID, q.Reason))
	}
	return out
}

// Normalizer convierte RawMovement en entity.Movement validando el esquema.
type Normalizer struct {
	validate *validator.Validate
}

// NewNormalizer construye el normalizador.
func NewNormalizer() *Normalizer {
	return &Normalizer{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Normalize procesa la lista completa. Los registros válidos salen como
// entidades; los montos ilegibles valen 0 con advertencia; los registros que
// no cumplen el esquema van a cuarentena.
func (n *Normalizer) Normalize(raws []dto.RawMovement) ([]entity.Movement, Diagnostics) {
	movs := make([]entity.Movement, 0, len(raws))
	var diags Diagnostics

	for _, raw := range raws {
		m, warns, err := n.normalizeOne(raw)
		if err != nil {
			diags.Quarantined = append(diags.Quarantined, Quarantined{
				Tag:        uuid.NewString(),
				MovementID: raw.ID,
				Reason:     err.Error(),
			})
			log.Warn().Str("movement_id", raw.ID).Err(err).Msg("movimiento en cuarentena")
			continue
		}
		for _, w := range warns {
			diags.Warnings = append(diags.Warnings, w)
			log.Warn().Str("movement_id", w.MovementID).Str("campo", w.Field).
				Msg(w.Detail + ", se contabiliza en 0")
		}
		movs = append(movs, m)
	}

	return movs, diags
}

func (n *Normalizer) normalizeOne(raw dto.RawMovement) (entity.Movement, []Warning, error) {
	if err := n.validate.Struct(raw); err != nil {
		return entity.Movement{}, nil, fmt.Errorf("esquema inválido: %w", err)
	}

	concept := entity.Concept(raw.Concepto)
	if concept != entity.ConceptStay && concept != entity.ConceptAmenity {
		return entity.Movement{}, nil, fmt.Errorf("concepto %q desconocido", raw.Concepto)
	}

	income, warns, err := n.normalizeIncome(raw)
	if err != nil {
		return entity.Movement{}, nil, err
	}

	m := entity.Movement{
		ID:        raw.ID,
		GuestName: raw.Nombre,
		Nights:    raw.Noches,
		Concept:   concept,
		OTA:       entity.OTA(raw.OTA),
		Income:    income,
	}
	if raw.Habitacion != nil {
		m.Room = entity.Room{Number: raw.Habitacion.Numero, Type: raw.Habitacion.Tipo}
	}

	m.PaymentDate = parseDate(raw.ID, "fechaPago", raw.FechaPago, &warns)
	m.CheckIn = parseDate(raw.ID, "checkIn", raw.CheckIn, &warns)
	m.CheckOut = parseDate(raw.ID, "checkOut", raw.CheckOut, &warns)

	if _, ok := report.CategoryOf(m); !ok {
		return entity.Movement{}, nil, fmt.Errorf("combinación tipo %q / subtipo %q desconocida",
			income.Type, income.Subtype)
	}

	return m, warns, nil
}

// normalizeIncome resuelve las dos formas históricas del ingreso.
func (n *Normalizer) normalizeIncome(raw dto.RawMovement) (entity.Income, []Warning, error) {
	switch {
	case raw.Ingreso != nil:
		return n.flatIncome(raw.ID, raw.Ingreso)
	case raw.Ingresos != nil:
		return n.legacyIncome(raw.ID, raw.Ingresos)
	default:
		return entity.Income{}, nil, fmt.Errorf("movimiento sin ingreso")
	}
}

func (n *Normalizer) flatIncome(id string, in *dto.RawIncome) (entity.Income, []Warning, error) {
	var warns []Warning

	income := entity.Income{
		Type:    entity.PaymentType(in.Tipo),
		Subtype: entity.PaymentSubtype(in.Subtipo),
		Amount:  parseAmount(id, "montoTotal", in.MontoTotal, &warns),
	}
	for _, a := range in.Autorizaciones {
		income.Authorizations = append(income.Authorizations, entity.Authorization{
			Code:   a.Codigo,
			Amount: parseAmount(id, "autorizacion "+a.Codigo, a.Monto, &warns),
		})
	}
	return income, warns, nil
}

// legacyIncome mapea el esquema anidado: el primer campo de monto no vacío
// determina el subtipo del movimiento.
func (n *Normalizer) legacyIncome(id string, in *dto.RawLegacyIncomes) (entity.Income, []Warning, error) {
	var warns []Warning

	if in.Efectivo != nil {
		pairs := []struct {
			subtype entity.PaymentSubtype
			monto   string
		}{
			{entity.SubtypePesos, in.Efectivo.Pesos},
			{entity.SubtypeDollars, in.Efectivo.Dolares},
			{entity.SubtypeEuros, in.Efectivo.Euros},
		}
		for _, p := range pairs {
			if p.monto != "" {
				return entity.Income{
					Type:    entity.PaymentCash,
					Subtype: p.subtype,
					Amount:  parseAmount(id, "ingresos.efectivo", p.monto, &warns),
				}, warns, nil
			}
		}
	}

	if in.Tarjeta != nil {
		pairs := []struct {
			subtype entity.PaymentSubtype
			monto   string
		}{
			{entity.SubtypeDebitCredit, in.Tarjeta.DebitoCredito},
			{entity.SubtypeVirtual, in.Tarjeta.Virtual},
			{entity.SubtypeTransfer, in.Tarjeta.Transferencias},
		}
		for _, p := range pairs {
			if p.monto != "" {
				income := entity.Income{
					Type:    entity.PaymentCard,
					Subtype: p.subtype,
					Amount:  parseAmount(id, "ingresos.tarjeta", p.monto, &warns),
				}
				for _, a := range in.Tarjeta.Autorizaciones {
					income.Authorizations = append(income.Authorizations, entity.Authorization{
						Code:   a.Codigo,
						Amount: parseAmount(id, "autorizacion "+a.Codigo, a.Monto, &warns),
					})
				}
				return income, warns, nil
			}
		}
	}

	return entity.Income{}, nil, fmt.Errorf("esquema histórico de ingresos sin monto")
}

// parseAmount monto ilegible → 0 con advertencia; el reporte nunca se aborta
// por un dato sucio.
func parseAmount(id, field, raw string, warns *[]Warning) decimal.Decimal {
	amount, err := money.Parse(raw)
	if err != nil {
		*warns = append(*warns, Warning{
			MovementID: id,
			Field:      field,
			Detail:     fmt.Sprintf("importe ilegible %q", raw),
		})
	}
	return amount
}

// parseDate fecha vacía → nil sin ruido; fecha ilegible → nil con
// advertencia. El render muestra vacío en ambos casos.
func parseDate(id, field, raw string, warns *[]Warning) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	*warns = append(*warns, Warning{
		MovementID: id,
		Field:      field,
		Detail:     fmt.Sprintf("fecha ilegible %q", raw),
	})
	return nil
}
