package report

import (
	"github.com/shopspring/decimal"

	"github.com/frontdesk/ingresos-api/internal/domain/entity"
)

// NightsStrategy cómo se cuentan las noches vendidas. Históricamente el
// tablero alternó entre el campo capturado y la diferencia de fechas; las dos
// estrategias no son intercambiables y se eligen por configuración.
type NightsStrategy string

const (
	// NightsFromDates noches como días completos entre check-in y check-out.
	NightsFromDates NightsStrategy = "fechas"
	// NightsFromField noches según el campo capturado en recepción.
	NightsFromField NightsStrategy = "campo"
)

// Options opciones de agregación.
type Options struct {
	Nights NightsStrategy
}

// Totals consolidado de ingresos de un rango de fechas. Todos los importes
// viven en el dominio decimal; el formateo a texto ocurre después, en los
// constructores de reporte.
type Totals struct {
	CashMXN         decimal.Decimal
	CashUSD         decimal.Decimal
	CashEUR         decimal.Decimal
	CardDebitCredit decimal.Decimal
	CardVirtual     decimal.Decimal
	Transfers       decimal.Decimal

	StayCharge decimal.Decimal
	Amenities  decimal.Decimal

	Booking decimal.Decimal
	Expedia decimal.Decimal
	Direct  decimal.Decimal

	NightsSold      int
	GrandTotal      decimal.Decimal
	AveragePerNight decimal.Decimal
}

// Aggregate recorre los movimientos una sola vez y consolida subtotales por
// categoría, concepto y OTA, las noches vendidas y el total general.
//
// Invariantes: GrandTotal == suma de las seis categorías == StayCharge +
// Amenities (con conceptos exhaustivos); los totales por OTA solo suman
// movimientos de estancia, con efectivo y tarjeta combinados.
func Aggregate(movs []entity.Movement, opts Options) Totals {
	var t Totals

	for _, m := range movs {
		amount := m.Income.Amount

		switch {
		case Categories[0].Matches(m):
			t.CashMXN = t.CashMXN.Add(amount)
		case Categories[1].Matches(m):
			t.CashUSD = t.CashUSD.Add(amount)
		case Categories[2].Matches(m):
			t.CashEUR = t.CashEUR.Add(amount)
		case Categories[3].Matches(m):
			t.CardDebitCredit = t.CardDebitCredit.Add(amount)
		case Categories[4].Matches(m):
			t.CardVirtual = t.CardVirtual.Add(amount)
		case Categories[5].Matches(m):
			t.Transfers = t.Transfers.Add(amount)
		}

		switch {
		case IsStayCharge(m):
			t.StayCharge = t.StayCharge.Add(amount)
			t.NightsSold += nights(m, opts.Nights)
			switch m.OTA {
			case entity.OTABooking:
				t.Booking = t.Booking.Add(amount)
			case entity.OTAExpedia:
				t.Expedia = t.Expedia.Add(amount)
			case entity.OTADirect:
				t.Direct = t.Direct.Add(amount)
			}
		case IsAmenity(m):
			t.Amenities = t.Amenities.Add(amount)
		}

		t.GrandTotal = t.GrandTotal.Add(amount)
	}

	if t.NightsSold > 0 {
		t.AveragePerNight = t.StayCharge.DivRound(decimal.NewFromInt(int64(t.NightsSold)), 2)
	}

	return t
}

// CategoryTotal total de la categoría dada, para recorrer las seis en el
// orden de la tabla Categories.
func (t Totals) CategoryTotal(c Category) decimal.Decimal {
	switch c.Subtype {
	case entity.SubtypePesos:
		return t.CashMXN
	case entity.SubtypeDollars:
		return t.CashUSD
	case entity.SubtypeEuros:
		return t.CashEUR
	case entity.SubtypeDebitCredit:
		return t.CardDebitCredit
	case entity.SubtypeVirtual:
		return t.CardVirtual
	case entity.SubtypeTransfer:
		return t.Transfers
	}
	return decimal.Zero
}

// Subtotal suma los importes de un grupo de movimientos. Es el mismo camino
// de suma que usan las filas de subtotal de los tres reportes.
func Subtotal(movs []entity.Movement) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range movs {
		sum = sum.Add(m.Income.Amount)
	}
	return sum
}

func nights(m entity.Movement, strategy NightsStrategy) int {
	if strategy == NightsFromField {
		if m.Nights < 0 {
			return 0
		}
		return m.Nights
	}
	return m.NightsFromDates()
}
