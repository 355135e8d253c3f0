package report

import (
	"github.com/frontdesk/ingresos-api/internal/application/dto"
	"github.com/frontdesk/ingresos-api/internal/application/ingest"
	"github.com/frontdesk/ingresos-api/internal/domain/entity"
	"github.com/frontdesk/ingresos-api/internal/domain/money"
	domreport "github.com/frontdesk/ingresos-api/internal/domain/report"
)

// BuildDashboard arma el view-model del tablero: bloque de totales más las
// tablas de las seis categorías (estancia agrupada por OTA, amenidades en
// tabla plana). Consume el mismo agregado que Excel y PDF.
func BuildDashboard(movs []entity.Movement, totals domreport.Totals, diags ingest.Diagnostics, periodo string) *dto.DashboardDTO {
	d := &dto.DashboardDTO{
		Periodo:      periodo,
		Totales:      buildTotals(totals),
		Advertencias: diags.Messages(),
	}

	for _, cat := range domreport.Categories {
		catMovs := domreport.Filter(movs, cat.Matches)
		tables := dto.CategoryTablesDTO{Categoria: cat.Label}

		stay := domreport.Filter(catMovs, domreport.IsStayCharge)
		grouped := domreport.GroupByOTA(stay)
		for _, ota := range grouped.Keys() {
			otaMovs := grouped.Get(ota)
			tables.Estancia = append(tables.Estancia, dto.OTATableDTO{
				OTA:      string(ota),
				Rows:     dashboardRows(otaMovs, cat),
				Subtotal: money.Format(domreport.Subtotal(otaMovs), cat.Currency),
			})
		}

		amenities := domreport.Filter(catMovs, domreport.IsAmenity)
		tables.Amenidades = dto.FlatTableDTO{
			Rows:     dashboardRows(amenities, cat),
			Subtotal: money.Format(domreport.Subtotal(amenities), cat.Currency),
		}

		d.Categorias = append(d.Categorias, tables)
	}

	return d
}

func buildTotals(t domreport.Totals) dto.TotalsDTO {
	return dto.TotalsDTO{
		EfectivoMXN: money.Format(t.CashMXN, money.MXN),
		EfectivoUSD: money.Format(t.CashUSD, money.USD),
		EfectivoEUR: money.Format(t.CashEUR, money.EUR),

		TarjetaDebitoCredito: money.Format(t.CardDebitCredit, money.MXN),
		TarjetasVirtuales:    money.Format(t.CardVirtual, money.MXN),
		Transferencias:       money.Format(t.Transfers, money.MXN),

		CobroEstancia: money.Format(t.StayCharge, money.MXN),
		Amenidades:    money.Format(t.Amenities, money.MXN),

		Booking: money.Format(t.Booking, money.MXN),
		Expedia: money.Format(t.Expedia, money.MXN),
		Directa: money.Format(t.Direct, money.MXN),

		TotalGeneral:        money.Format(t.GrandTotal, money.MXN),
		TarifaPromedioNoche: money.Format(t.AveragePerNight, money.MXN),
		NochesVendidas:      t.NightsSold,
	}
}

func dashboardRows(movs []entity.Movement, cat domreport.Category) []dto.MovementRowDTO {
	rows := make([]dto.MovementRowDTO, 0, len(movs))
	for i, m := range movs {
		row := dto.MovementRowDTO{
			Numero:         i + 1,
			FechaPago:      fmtDate(m.PaymentDate),
			Nombre:         guestName(m),
			Habitacion:     roomNumber(m),
			TipoHabitacion: roomType(m),
			CheckIn:        fmtDate(m.CheckIn),
			CheckOut:       fmtDate(m.CheckOut),
			Importe:        money.Format(m.Income.Amount, cat.Currency),
			Concepto:       string(m.Concept),
			OTA:            string(m.OTAOrDefault()),
		}
		if cat.IsCard() {
			row.Autorizacion = firstAuthCode(m)
		}
		rows = append(rows, row)
	}
	return rows
}
