package report

import (
	"github.com/shopspring/decimal"

	"github.com/frontdesk/ingresos-api/internal/domain/entity"
	"github.com/frontdesk/ingresos-api/internal/domain/money"
	domreport "github.com/frontdesk/ingresos-api/internal/domain/report"
)

var (
	excelCashHeader = []string{"Fecha de Pago", "Nombre", "Habitación", "Tipo de Habitación", "OTA", "Importe", "Concepto"}
	excelCardHeader = []string{"Fecha de Pago", "Nombre", "Habitación", "Tipo de Habitación", "Autorización", "OTA", "Importe", "Concepto"}
)

// BuildSheetRows produce la hoja completa del libro como filas de texto:
// bloque de totales y después un bloque por categoría (título, encabezado,
// filas de datos, fila de subtotal y fila espaciadora). Los cobros con varias
// autorizaciones se expanden a una fila por autorización, con los campos
// compartidos solo en la primera.
func BuildSheetRows(movs []entity.Movement, totals domreport.Totals) [][]string {
	var rows [][]string

	rows = append(rows, totalsBlock(totals)...)
	rows = append(rows, []string{})

	for _, cat := range domreport.Categories {
		catMovs := domreport.Filter(movs, cat.Matches)
		rows = append(rows, categoryBlock(cat, catMovs)...)
		rows = append(rows, []string{})
	}

	return rows
}

func totalsBlock(t domreport.Totals) [][]string {
	cash := t.CashMXN.Add(t.CashUSD).Add(t.CashEUR)
	card := t.CardDebitCredit.Add(t.CardVirtual).Add(t.Transfers)

	f := func(d decimal.Decimal) string { return money.Format(d, money.MXN) }

	return [][]string{
		{"Concepto", "Total"},
		{"Efectivo", f(cash)},
		{"Tarjeta", f(card)},
		{"Cobro de Estancia", f(t.StayCharge)},
		{"Amenidades", f(t.Amenities)},
		{"Booking", f(t.Booking)},
		{"Expedia", f(t.Expedia)},
		{"Directa", f(t.Direct)},
		{"Total General", f(t.GrandTotal)},
	}
}

func categoryBlock(cat domreport.Category, movs []entity.Movement) [][]string {
	header := excelCashHeader
	if cat.IsCard() {
		header = excelCardHeader
	}

	rows := [][]string{{cat.Label}, header}

	for _, m := range movs {
		if cat.IsCard() {
			rows = append(rows, cardRows(m, cat)...)
		} else {
			rows = append(rows, []string{
				fmtDate(m.PaymentDate), guestName(m), roomNumber(m), roomType(m),
				string(m.OTAOrDefault()), money.Format(m.Income.Amount, cat.Currency), string(m.Concept),
			})
		}
	}

	subtotal := make([]string, len(header))
	subtotal[0] = "Subtotal:"
	subtotal[len(header)-2] = money.Format(domreport.Subtotal(movs), cat.Currency)
	rows = append(rows, subtotal)

	return rows
}

// cardRows una fila por autorización; sin autorizaciones, una sola fila con
// el importe total del cobro.
func cardRows(m entity.Movement, cat domreport.Category) [][]string {
	if len(m.Income.Authorizations) == 0 {
		return [][]string{{
			fmtDate(m.PaymentDate), guestName(m), roomNumber(m), roomType(m),
			naCell, string(m.OTAOrDefault()), money.Format(m.Income.Amount, cat.Currency), string(m.Concept),
		}}
	}

	rows := make([][]string, 0, len(m.Income.Authorizations))
	for i, a := range m.Income.Authorizations {
		if i == 0 {
			rows = append(rows, []string{
				fmtDate(m.PaymentDate), guestName(m), roomNumber(m), roomType(m),
				a.Code, string(m.OTAOrDefault()), money.Format(a.Amount, cat.Currency), string(m.Concept),
			})
			continue
		}
		rows = append(rows, []string{
			"", "", "", "", a.Code, "", money.Format(a.Amount, cat.Currency), "",
		})
	}
	return rows
}
