package ingest_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
	"github.com/frontdesk/ingresos-api/internal/application/ingest"
	"github.com/frontdesk/ingresos-api/internal/domain/entity"
)

func rawStay(id, monto string) dto.RawMovement {
	return dto.RawMovement{
		ID:        id,
		Nombre:    "Huésped de Prueba",
		Concepto:  string(entity.ConceptStay),
		OTA:       "Booking",
		FechaPago: "2024-03-10",
		CheckIn:   "2024-03-10",
		CheckOut:  "2024-03-12",
		Ingreso: &dto.RawIncome{
			Tipo:       string(entity.PaymentCash),
			Subtipo:    string(entity.SubtypePesos),
			MontoTotal: monto,
		},
	}
}

func TestNormalize_EsquemaPlano(t *testing.T) {
	n := ingest.NewNormalizer()

	movs, diags := n.Normalize([]dto.RawMovement{rawStay("m1", "1.500,00")})

	require.Len(t, movs, 1)
	assert.Empty(t, diags.Warnings)
	assert.Empty(t, diags.Quarantined)

	m := movs[0]
	assert.True(t, m.Income.Amount.Equal(decimal.NewFromInt(1500)),
		"el monto con punto de miles y coma decimal debe normalizar a 1500")
	assert.Equal(t, entity.OTABooking, m.OTA)
	require.NotNil(t, m.CheckIn)
	require.NotNil(t, m.CheckOut)
	assert.Equal(t, 2, m.NightsFromDates())
}

func TestNormalize_EsquemaHistoricoAnidado(t *testing.T) {
	n := ingest.NewNormalizer()

	raw := dto.RawMovement{
		ID:       "legacy-1",
		Concepto: string(entity.ConceptStay),
		Ingresos: &dto.RawLegacyIncomes{
			Tarjeta: &dto.RawLegacyCard{
				DebitoCredito: "800,00",
				Autorizaciones: []dto.RawAuthorization{
					{Codigo: "AUT-1", Monto: "500,00"},
					{Codigo: "AUT-2", Monto: "300,00"},
				},
			},
		},
	}

	movs, diags := n.Normalize([]dto.RawMovement{raw})

	require.Len(t, movs, 1)
	assert.Empty(t, diags.Quarantined)

	m := movs[0]
	assert.Equal(t, entity.PaymentCard, m.Income.Type)
	assert.Equal(t, entity.SubtypeDebitCredit, m.Income.Subtype)
	assert.True(t, m.Income.Amount.Equal(decimal.NewFromInt(800)))
	require.Len(t, m.Income.Authorizations, 2)
	assert.True(t, m.Income.Authorizations[0].Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, m.Income.Authorizations[1].Amount.Equal(decimal.NewFromInt(300)))
}

func TestNormalize_MontoIlegibleValeCeroConAdvertencia(t *testing.T) {
	n := ingest.NewNormalizer()

	movs, diags := n.Normalize([]dto.RawMovement{
		rawStay("sucio", "abc"),
		rawStay("limpio", "100,00"),
	})

	require.Len(t, movs, 2, "el dato sucio degrada el importe, no excluye el registro")
	assert.True(t, movs[0].Income.Amount.IsZero())
	assert.True(t, movs[1].Income.Amount.Equal(decimal.NewFromInt(100)))

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "sucio", diags.Warnings[0].MovementID)
	assert.Contains(t, diags.Warnings[0].Detail, "abc")
	assert.NotEmpty(t, diags.Messages())
}

func TestNormalize_ConceptoDesconocidoVaACuarentena(t *testing.T) {
	n := ingest.NewNormalizer()

	raw := rawStay("raro", "100,00")
	raw.Concepto = "Propina"

	movs, diags := n.Normalize([]dto.RawMovement{raw})

	assert.Empty(t, movs)
	require.Len(t, diags.Quarantined, 1)
	assert.Equal(t, "raro", diags.Quarantined[0].MovementID)
	assert.NotEmpty(t, diags.Quarantined[0].Tag, "cada registro en cuarentena lleva etiqueta rastreable")
	assert.Contains(t, diags.Quarantined[0].Reason, "Propina")
}

func TestNormalize_CombinacionTipoSubtipoInvalida(t *testing.T) {
	n := ingest.NewNormalizer()

	raw := rawStay("cruzado", "100,00")
	raw.Ingreso.Tipo = string(entity.PaymentCard)
	raw.Ingreso.Subtipo = string(entity.SubtypePesos)

	movs, diags := n.Normalize([]dto.RawMovement{raw})

	assert.Empty(t, movs)
	require.Len(t, diags.Quarantined, 1)
}

func TestNormalize_SinIngresoVaACuarentena(t *testing.T) {
	n := ingest.NewNormalizer()

	raw := dto.RawMovement{ID: "vacio", Concepto: string(entity.ConceptAmenity)}

	movs, diags := n.Normalize([]dto.RawMovement{raw})

	assert.Empty(t, movs)
	require.Len(t, diags.Quarantined, 1)
	assert.Contains(t, diags.Quarantined[0].Reason, "sin ingreso")
}

func TestNormalize_FechasAusentesOIlegibles(t *testing.T) {
	n := ingest.NewNormalizer()

	raw := rawStay("fechas", "100,00")
	raw.CheckIn = ""
	raw.CheckOut = "no-es-fecha"

	movs, diags := n.Normalize([]dto.RawMovement{raw})

	require.Len(t, movs, 1)
	assert.Nil(t, movs[0].CheckIn, "fecha ausente queda en nil sin advertencia")
	assert.Nil(t, movs[0].CheckOut, "fecha ilegible queda en nil")
	require.Len(t, diags.Warnings, 1, "solo la fecha ilegible genera advertencia")
	assert.Equal(t, "checkOut", diags.Warnings[0].Field)
	assert.Equal(t, 0, movs[0].NightsFromDates(), "sin par de fechas no hay noches")
}

func TestNormalize_ListaVacia(t *testing.T) {
	n := ingest.NewNormalizer()

	movs, diags := n.Normalize(nil)

	assert.Empty(t, movs)
	assert.Empty(t, diags.Warnings)
	assert.Empty(t, diags.Quarantined)
}
