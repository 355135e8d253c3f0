// Package excel implementa el puerto de libros de Excel con excelize.
// Recibe la hoja como filas de texto ya formateadas; aquí solo se escribe el
// archivo y se aplica presentación ligera.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelizeGenerator implementa report.WorkbookGenerator.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator construye el generador.
func NewExcelizeGenerator() *ExcelizeGenerator {
	return &ExcelizeGenerator{}
}

// Generate escribe las filas en una hoja única y devuelve los bytes del
// archivo .xlsx. Las filas de un solo elemento son títulos de bloque y las
// que empiezan con "Subtotal:" filas de subtotal; ambas van en negritas.
func (g *ExcelizeGenerator) Generate(sheetName string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue // fila espaciadora
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de la fila %d: %w", i+1, err)
		}

		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: escribir fila %d: %w", i+1, err)
		}

		if len(row) == 1 || row[0] == "Subtotal:" {
			endCell, err := excelize.CoordinatesToCellName(len(row), i+1)
			if err != nil {
				return nil, fmt.Errorf("excel: celda final de la fila %d: %w", i+1, err)
			}
			if err := f.SetCellStyle(sheetName, cell, endCell, boldStyle); err != nil {
				return nil, fmt.Errorf("excel: aplicar estilo en fila %d: %w", i+1, err)
			}
		}
	}

	// Ancho suficiente para fechas y nombres de huésped.
	if err := f.SetColWidth(sheetName, "A", "H", 18); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
