package report

import (
	"strconv"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
	"github.com/frontdesk/ingresos-api/internal/domain/entity"
	"github.com/frontdesk/ingresos-api/internal/domain/money"
	domreport "github.com/frontdesk/ingresos-api/internal/domain/report"
)

var pdfDetailHeader = []string{
	"No.", "Fecha Pago", "Nombre", "Habitación", "Tipo Hab.",
	"Check-In", "Check-Out", "Autorización", "Monto Aut.", "Importe Total",
}

// BuildPDFReport arma el documento: primera página con cinco mini-tablas de
// resumen y después los bloques de detalle agrupados subtipo → concepto →
// OTA, cada uno con su subtotal. Mismo agregado que el tablero y el Excel.
func BuildPDFReport(movs []entity.Movement, totals domreport.Totals, generadoEn, periodo string) *dto.PDFReport {
	rep := &dto.PDFReport{
		Titulo:     "Reporte de Movimientos",
		GeneradoEn: generadoEn,
		Periodo:    periodo,
		SinDatos:   len(movs) == 0,
		Resumen:    summaryTables(totals),
	}
	if rep.SinDatos {
		return rep
	}

	bySubtype := domreport.GroupBy(movs, func(m entity.Movement) entity.PaymentSubtype {
		return m.Income.Subtype
	})
	for _, subtipo := range bySubtype.Keys() {
		byConcept := domreport.GroupBy(bySubtype.Get(subtipo), func(m entity.Movement) entity.Concept {
			return m.Concept
		})
		for _, concepto := range byConcept.Keys() {
			byOTA := domreport.GroupByOTA(byConcept.Get(concepto))
			for _, ota := range byOTA.Keys() {
				otaMovs := byOTA.Get(ota)
				cur := blockCurrency(otaMovs)
				rep.Detalle = append(rep.Detalle, dto.PDFDetailBlock{
					Subtipo:  string(subtipo),
					Concepto: string(concepto),
					OTA:      string(ota),
					Head:     pdfDetailHeader,
					Rows:     detailRows(otaMovs, cur),
					Subtotal: money.Format(domreport.Subtotal(otaMovs), cur),
				})
			}
		}
	}

	return rep
}

func summaryTables(t domreport.Totals) []dto.PDFTable {
	head := []string{"Descripción", "Total"}

	return []dto.PDFTable{
		{
			Titulo: "Efectivo",
			Head:   head,
			Body: [][]string{
				{"Efectivo MXN", money.Format(t.CashMXN, money.MXN)},
				{"Efectivo USD", money.Format(t.CashUSD, money.USD)},
				{"Efectivo EUR", money.Format(t.CashEUR, money.EUR)},
			},
		},
		{
			Titulo: "Tarjetas",
			Head:   head,
			Body: [][]string{
				{"Tarjeta Débito/Crédito", money.Format(t.CardDebitCredit, money.MXN)},
				{"Tarjetas Virtuales", money.Format(t.CardVirtual, money.MXN)},
				{"Transferencias", money.Format(t.Transfers, money.MXN)},
			},
		},
		{
			Titulo: "Concepto",
			Head:   head,
			Body: [][]string{
				{"Cobro de Estancia", money.Format(t.StayCharge, money.MXN)},
				{"Amenidades", money.Format(t.Amenities, money.MXN)},
			},
		},
		{
			Titulo: "OTAs",
			Head:   head,
			Body: [][]string{
				{"Booking", money.Format(t.Booking, money.MXN)},
				{"Expedia", money.Format(t.Expedia, money.MXN)},
				{"Directa", money.Format(t.Direct, money.MXN)},
			},
		},
		{
			Titulo: "Totales Generales",
			Head:   head,
			Body: [][]string{
				{"Total General", money.Format(t.GrandTotal, money.MXN)},
				{"Tarifa Promedio por Noche", money.Format(t.AveragePerNight, money.MXN)},
				{"Total Noches Vendidas", strconv.Itoa(t.NightsSold)},
			},
		},
	}
}

// blockCurrency moneda de despliegue del bloque: la de su categoría; si el
// grupo quedara vacío o sin categoría conocida, pesos.
func blockCurrency(movs []entity.Movement) money.Currency {
	if len(movs) == 0 {
		return money.MXN
	}
	if cat, ok := domreport.CategoryOf(movs[0]); ok {
		return cat.Currency
	}
	return money.MXN
}

// detailRows expande cada movimiento: una fila por autorización con los
// campos compartidos solo en la primera (el equivalente del rowspan de la
// tabla en pantalla); sin autorizaciones, una sola fila.
func detailRows(movs []entity.Movement, cur money.Currency) [][]string {
	var rows [][]string
	for i, m := range movs {
		num := strconv.Itoa(i + 1)
		if len(m.Income.Authorizations) == 0 {
			rows = append(rows, []string{
				num, fmtDate(m.PaymentDate), guestName(m), roomNumber(m), roomType(m),
				fmtDate(m.CheckIn), fmtDate(m.CheckOut), naCell, "",
				money.Format(m.Income.Amount, cur),
			})
			continue
		}
		for j, a := range m.Income.Authorizations {
			if j == 0 {
				rows = append(rows, []string{
					num, fmtDate(m.PaymentDate), guestName(m), roomNumber(m), roomType(m),
					fmtDate(m.CheckIn), fmtDate(m.CheckOut), a.Code,
					money.Format(a.Amount, cur), money.Format(m.Income.Amount, cur),
				})
				continue
			}
			rows = append(rows, []string{
				"", "", "", "", "", "", "", a.Code, money.Format(a.Amount, cur), "",
			})
		}
	}
	return rows
}
