package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontdesk/ingresos-api/internal/domain/entity"
	"github.com/frontdesk/ingresos-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func mov(tipo entity.PaymentType, subtipo entity.PaymentSubtype, concepto entity.Concept, ota entity.OTA, amount string) entity.Movement {
	return entity.Movement{
		ID:      "mov-" + amount,
		Concept: concepto,
		OTA:     ota,
		Income: entity.Income{
			Type:    tipo,
			Subtype: subtipo,
			Amount:  decimal.RequireFromString(amount),
		},
	}
}

func sampleMovements() []entity.Movement {
	return []entity.Movement{
		mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptStay, entity.OTABooking, "1500"),
		mov(entity.PaymentCash, entity.SubtypeDollars, entity.ConceptStay, entity.OTAExpedia, "200.50"),
		mov(entity.PaymentCash, entity.SubtypeEuros, entity.ConceptAmenity, "", "80"),
		mov(entity.PaymentCard, entity.SubtypeDebitCredit, entity.ConceptStay, entity.OTADirect, "800"),
		mov(entity.PaymentCard, entity.SubtypeVirtual, entity.ConceptStay, entity.OTABooking, "950.25"),
		mov(entity.PaymentCard, entity.SubtypeTransfer, entity.ConceptAmenity, "", "120"),
	}
}

func eq(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"%s: se esperaba %s, se obtuvo %s", msg, want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes de agregación
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_SumasPorCategoria(t *testing.T) {
	tot := report.Aggregate(sampleMovements(), report.Options{})

	eq(t, "1500", tot.CashMXN, "efectivo MXN")
	eq(t, "200.50", tot.CashUSD, "efectivo USD")
	eq(t, "80", tot.CashEUR, "efectivo EUR")
	eq(t, "800", tot.CardDebitCredit, "tarjeta débito/crédito")
	eq(t, "950.25", tot.CardVirtual, "tarjetas virtuales")
	eq(t, "120", tot.Transfers, "transferencias")
}

func TestAggregate_TotalGeneralCuadraConCategoriasYConceptos(t *testing.T) {
	tot := report.Aggregate(sampleMovements(), report.Options{})

	sumaCategorias := decimal.Zero
	for _, c := range report.Categories {
		sumaCategorias = sumaCategorias.Add(tot.CategoryTotal(c))
	}

	assert.True(t, tot.GrandTotal.Equal(sumaCategorias),
		"el total general debe ser la suma de las seis categorías")
	assert.True(t, tot.GrandTotal.Equal(tot.StayCharge.Add(tot.Amenities)),
		"el total general debe ser estancia + amenidades")
	eq(t, "3650.75", tot.GrandTotal, "total general")
}

func TestAggregate_OTAsSoloSumanEstancia(t *testing.T) {
	movs := sampleMovements()
	// Amenidad con OTA asignada: no debe entrar al total por OTA.
	amenidadConOTA := mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptAmenity, entity.OTABooking, "999")
	movs = append(movs, amenidadConOTA)

	tot := report.Aggregate(movs, report.Options{})

	eq(t, "2450.25", tot.Booking, "Booking suma efectivo y tarjeta de estancia")
	eq(t, "200.50", tot.Expedia, "Expedia")
	eq(t, "800", tot.Direct, "Directa")

	sumaOTA := tot.Booking.Add(tot.Expedia).Add(tot.Direct)
	assert.True(t, sumaOTA.LessThanOrEqual(tot.StayCharge),
		"la suma por OTA es un subconjunto del cobro de estancia")
}

func TestAggregate_SumaPorOTAIgualaEstanciaSiTodasAsignadas(t *testing.T) {
	movs := []entity.Movement{
		mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptStay, entity.OTABooking, "100"),
		mov(entity.PaymentCard, entity.SubtypeVirtual, entity.ConceptStay, entity.OTADirect, "250"),
	}
	tot := report.Aggregate(movs, report.Options{})

	sumaOTA := tot.Booking.Add(tot.Expedia).Add(tot.Direct)
	assert.True(t, sumaOTA.Equal(tot.StayCharge),
		"con toda estancia asignada a una OTA, la suma por OTA iguala el total de estancia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Noches vendidas: las dos estrategias se verifican por separado porque no
// son intercambiables.
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_NochesPorFechas(t *testing.T) {
	m := mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptStay, entity.OTADirect, "3000")
	m.CheckIn = date("2024-01-01")
	m.CheckOut = date("2024-01-04")

	tot := report.Aggregate([]entity.Movement{m}, report.Options{Nights: report.NightsFromDates})

	assert.Equal(t, 3, tot.NightsSold, "del 1 al 4 de enero son 3 noches")
	eq(t, "1000", tot.AveragePerNight, "tarifa promedio por noche")
}

func TestAggregate_NochesPorCampo(t *testing.T) {
	m := mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptStay, entity.OTADirect, "3000")
	m.Nights = 5
	// Fechas contradictorias a propósito: con la estrategia de campo se ignoran.
	m.CheckIn = date("2024-01-01")
	m.CheckOut = date("2024-01-02")

	tot := report.Aggregate([]entity.Movement{m}, report.Options{Nights: report.NightsFromField})

	assert.Equal(t, 5, tot.NightsSold, "la estrategia de campo usa el valor capturado")
	eq(t, "600", tot.AveragePerNight, "3000 / 5 noches")
}

func TestAggregate_NochesSinFechasContribuyenCero(t *testing.T) {
	m := mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptStay, entity.OTADirect, "500")
	// Sin check-in ni check-out.
	tot := report.Aggregate([]entity.Movement{m}, report.Options{Nights: report.NightsFromDates})

	assert.Equal(t, 0, tot.NightsSold)
	assert.True(t, tot.AveragePerNight.IsZero(),
		"sin noches la tarifa promedio es 0, nunca división entre cero")
}

func TestAggregate_AmenidadesNoSumanNoches(t *testing.T) {
	m := mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptAmenity, "", "500")
	m.CheckIn = date("2024-01-01")
	m.CheckOut = date("2024-01-04")

	tot := report.Aggregate([]entity.Movement{m}, report.Options{Nights: report.NightsFromDates})
	assert.Equal(t, 0, tot.NightsSold, "solo la estancia vende noches")
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos degradados
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_ListaVacia(t *testing.T) {
	tot := report.Aggregate(nil, report.Options{})

	assert.True(t, tot.GrandTotal.IsZero(), "total general de lista vacía es 0")
	assert.True(t, tot.AveragePerNight.IsZero())
	assert.Equal(t, 0, tot.NightsSold)
}

func TestAggregate_ImporteCeroPorMontoIlegible(t *testing.T) {
	// La ingesta convierte montos ilegibles en 0 (tolerancia a datos sucios);
	// el agregador debe sumarlos como 0 sin alterar el resto.
	movs := []entity.Movement{
		mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptStay, entity.OTADirect, "0"),
		mov(entity.PaymentCash, entity.SubtypePesos, entity.ConceptStay, entity.OTADirect, "100"),
	}
	tot := report.Aggregate(movs, report.Options{})
	eq(t, "100", tot.CashMXN, "el movimiento ilegible aporta 0, no NaN")
}

func TestSubtotal_MismoCaminoQueAgregado(t *testing.T) {
	movs := sampleMovements()
	pesos := report.Filter(movs, report.Categories[0].Matches)

	sub := report.Subtotal(pesos)
	tot := report.Aggregate(movs, report.Options{})

	require.True(t, sub.Equal(tot.CashMXN),
		"el subtotal del grupo debe coincidir con el total de la categoría")
}
