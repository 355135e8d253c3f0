// Package report orquesta las tres superficies de salida del tablero de
// ingresos: view-model JSON, libro de Excel y documento PDF. Las tres parten
// del mismo agregado de dominio, por lo que sus subtotales coinciden siempre.
package report

import (
	"context"

	"github.com/frontdesk/ingresos-api/internal/application/dto"
)

// MovementSource puerto de entrada de datos: la API de movimientos es un
// colaborador externo, este servicio nunca persiste nada.
type MovementSource interface {
	FetchMovements(ctx context.Context) ([]dto.RawMovement, error)
}

// WorkbookGenerator puerto de salida para el libro de Excel. Recibe la hoja
// como filas de texto ya formateadas y devuelve los bytes del archivo.
type WorkbookGenerator interface {
	Generate(sheetName string, rows [][]string) ([]byte, error)
}

// ReportPDFGenerator puerto de salida para el documento PDF.
type ReportPDFGenerator interface {
	Generate(ctx context.Context, rep *dto.PDFReport) ([]byte, error)
}
