package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ingreso registrados en recepción.
type PaymentType string

const (
	PaymentCash PaymentType = "Efectivo"
	PaymentCard PaymentType = "Tarjeta"
)

// Subtipos de ingreso. Para Efectivo indican la moneda física; para Tarjeta
// el canal de cobro.
type PaymentSubtype string

const (
	SubtypePesos       PaymentSubtype = "Pesos"
	SubtypeDollars     PaymentSubtype = "Dólares"
	SubtypeEuros       PaymentSubtype = "Euros"
	SubtypeDebitCredit PaymentSubtype = "Débito/Crédito"
	SubtypeVirtual     PaymentSubtype = "Virtual"
	SubtypeTransfer    PaymentSubtype = "Transferencias"
)

// Concepto del cobro: la estancia en sí o un cargo por amenidades.
type Concept string

const (
	ConceptStay    Concept = "Cobro de estancia"
	ConceptAmenity Concept = "Amenidades"
)

// OTA canal de reserva. Vacío significa que el movimiento no tiene canal
// asignado; OTAOrDefault lo agrupa bajo OTANone.
type OTA string

const (
	OTABooking OTA = "Booking"
	OTAExpedia OTA = "Expedia"
	OTADirect  OTA = "Directa"
	OTANone    OTA = "Sin OTA"
)

// Authorization sub-transacción de un cobro con tarjeta. Un movimiento puede
// tener varias; la suma de sus montos debería coincidir con el importe total
// del ingreso (dato de calidad externa, no se valida aquí).
type Authorization struct {
	Code   string
	Amount decimal.Decimal
}

// Room datos descriptivos de la habitación; no participan en los cálculos.
type Room struct {
	Number string
	Type   string
}

// Income el cobro en sí: tipo, subtipo y monto ya normalizado a decimal.
// El monto en texto con formato de moneda se queda en la frontera de
// ingesta; a partir de aquí solo circulan decimales.
type Income struct {
	Type           PaymentType
	Subtype        PaymentSubtype
	Amount         decimal.Decimal
	Authorizations []Authorization
}

// Movement un evento de pago ligado a una estancia o a un cargo de
// amenidades. Entidad de solo lectura: la agregación nunca la muta.
type Movement struct {
	ID          string
	GuestName   string
	Room        Room
	PaymentDate *time.Time
	CheckIn     *time.Time
	CheckOut    *time.Time
	Nights      int
	Concept     Concept
	OTA         OTA
	Income      Income
}

// NightsFromDates noches de estancia calculadas como días completos entre
// check-in y check-out. Sin alguna de las dos fechas devuelve 0.
func (m Movement) NightsFromDates() int {
	if m.CheckIn == nil || m.CheckOut == nil {
		return 0
	}
	n := int(m.CheckOut.Sub(*m.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// OTAOrDefault devuelve la OTA del movimiento o el grupo centinela "Sin OTA".
func (m Movement) OTAOrDefault() OTA {
	if m.OTA == "" {
		return OTANone
	}
	return m.OTA
}
