// Package pdf implementa el Reporte de Movimientos con Maroto v2.
//
// Layout del documento A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Página 1: encabezado + período                             │
//	│  Mini-tablas: Efectivo | Tarjetas | Concepto | OTAs |       │
//	│               Totales Generales                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Páginas siguientes: detalle Subtipo → Concepto → OTA       │
//	│  con subtotal por bloque y folio al pie                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Anchos de las diez columnas del detalle (grid de 12).
var detailColSizes = []int{1, 1, 2, 1, 1, 1, 1, 1, 1, 2}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate renderiza el reporte y devuelve sus bytes. El salto de página y el
// folio del pie corren por cuenta del motor: al agotarse el alto imprimible
// el siguiente bloque abre página nueva.
func (g *MarotoReportGenerator) Generate(_ context.Context, rep *dto.PDFReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithPageNumber(props.PageNumber{Pattern: "Página {current}", Place: props.RightBottom, Size: 8}).
		WithTitle(rep.Titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(rep)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if rep.SinDatos {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay datos disponibles para el reporte.", props.Text{
				Size: 10, Top: 3, Color: colorGray,
			}),
		)))
		return render(m)
	}

	for _, tabla := range rep.Resumen {
		m.AddRows(summaryTableRows(tabla)...)
	}

	for _, bloque := range rep.Detalle {
		m.AddRows(detailBlockRows(bloque)...)
	}

	return render(m)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(rep *dto.PDFReport) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(rep.Titulo, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Fecha de generación: "+rep.GeneradoEn, props.Text{
				Size: 9, Color: colorGray,
			}),
		)),
	}
	if rep.Periodo != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Período: "+rep.Periodo, props.Text{Size: 9, Color: colorGray}),
		)))
	}
	return rows
}

// summaryTableRows una mini-tabla de la primera página: título, encabezado y
// cuerpo con el total alineado a la derecha.
func summaryTableRows(tabla dto.PDFTable) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(tabla.Titulo, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(6).Add(
			col.New(8).Add(text.New(tabla.Head[0], props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(4).Add(text.New(tabla.Head[1], props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			})),
		),
	}
	for _, fila := range tabla.Body {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(fila[0], props.Text{Size: 9, Top: 0.5})),
			col.New(4).Add(text.New(fila[1], props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 0.5,
			})),
		))
	}
	rows = append(rows, row.New(2))
	return rows
}

// detailBlockRows un bloque de detalle: encabezados jerárquicos, tabla y
// fila de subtotal.
func detailBlockRows(bloque dto.PDFDetailBlock) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(bloque.Subtipo, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(bloque.Concepto, props.Text{Size: 10, Top: 0.5}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(bloque.OTA, props.Text{Size: 9, Color: colorGray, Top: 0.5}),
		)),
		detailHeaderRow(bloque.Head),
	}

	for _, fila := range bloque.Rows {
		rows = append(rows, detailDataRow(fila))
	}

	rows = append(rows,
		row.New(6).Add(
			col.New(10).Add(text.New("Subtotal:", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(bloque.Subtotal, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		),
		row.New(3),
	)
	return rows
}

func detailHeaderRow(head []string) core.Row {
	cols := make([]core.Col, 0, len(head))
	for i, h := range head {
		cols = append(cols, col.New(detailColSizes[i]).Add(
			text.New(h, props.Text{Style: fontstyle.Bold, Size: 7, Top: 1}),
		))
	}
	return row.New(6).Add(cols...)
}

func detailDataRow(fila []string) core.Row {
	cols := make([]core.Col, 0, len(fila))
	for i, v := range fila {
		a := align.Left
		// Monto Aut. e Importe Total alineados a la derecha.
		if i >= 8 {
			a = align.Right
		}
		cols = append(cols, col.New(detailColSizes[i]).Add(
			text.New(v, props.Text{Size: 7, Align: a, Top: 0.5}),
		))
	}
	return row.New(5).Add(cols...)
}
