// Package report contiene los servicios de dominio del reporte de ingresos:
// clasificación por categoría de pago, agrupación estable y agregación de
// totales. Es computación pura sobre una lista en memoria; sin I/O.
package report

import (
	"github.com/frontdesk/ingresos-api/internal/domain/entity"
	"github.com/frontdesk/ingresos-api/internal/domain/money"
)

// Category una de las seis categorías de pago del tablero. La tabla
// Categories es la única fuente de verdad de pertenencia: pantalla, Excel y
// PDF clasifican con los mismos predicados, de modo que sus subtotales no
// pueden discrepar.
type Category struct {
	Type     entity.PaymentType
	Subtype  entity.PaymentSubtype
	Label    string
	Currency money.Currency
}

// Categories en el orden en que aparecen en todos los reportes.
var Categories = []Category{
	{entity.PaymentCash, entity.SubtypePesos, "Efectivo en Pesos", money.MXN},
	{entity.PaymentCash, entity.SubtypeDollars, "Efectivo en Dólares", money.USD},
	{entity.PaymentCash, entity.SubtypeEuros, "Efectivo en Euros", money.EUR},
	{entity.PaymentCard, entity.SubtypeDebitCredit, "Tarjeta Débito/Crédito", money.MXN},
	{entity.PaymentCard, entity.SubtypeVirtual, "Tarjetas Virtuales", money.MXN},
	{entity.PaymentCard, entity.SubtypeTransfer, "Transferencias", money.MXN},
}

// Matches reporta si el movimiento pertenece a la categoría.
func (c Category) Matches(m entity.Movement) bool {
	return m.Income.Type == c.Type && m.Income.Subtype == c.Subtype
}

// IsCard reporta si la categoría corresponde a un cobro con tarjeta, que en
// los reportes lleva columnas de autorización.
func (c Category) IsCard() bool {
	return c.Type == entity.PaymentCard
}

// CategoryOf busca la categoría del movimiento. ok es false cuando la
// combinación tipo/subtipo no existe en la tabla.
func CategoryOf(m entity.Movement) (Category, bool) {
	for _, c := range Categories {
		if c.Matches(m) {
			return c, true
		}
	}
	return Category{}, false
}

// IsStayCharge reporta si el movimiento cobra la estancia.
func IsStayCharge(m entity.Movement) bool {
	return m.Concept == entity.ConceptStay
}

// IsAmenity reporta si el movimiento cobra amenidades.
func IsAmenity(m entity.Movement) bool {
	return m.Concept == entity.ConceptAmenity
}
