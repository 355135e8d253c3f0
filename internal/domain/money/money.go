// Package money concentra el parseo y el formateo de importes monetarios.
//
// Los movimientos llegan de recepción con el monto como texto formateado y con
// dos convenciones históricas mezcladas: "1.500,00" (punto de miles, coma
// decimal) y "1,500.00" (coma de miles, punto decimal). Parse acepta ambas y
// normaliza a decimal; el resto del sistema nunca vuelve a tocar texto hasta
// el formateo de salida.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency código ISO 4217 de las monedas que maneja recepción.
type Currency string

const (
	MXN Currency = "MXN"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

var symbolPrinter = message.NewPrinter(language.Spanish)

// Valid reporta si el código existe en ISO 4217.
func (c Currency) Valid() bool {
	_, err := xcurrency.ParseISO(string(c))
	return err == nil
}

// Symbol símbolo estrecho de la moneda ("$", "€"). Ante un código
// desconocido devuelve "$" para no romper el render de reportes.
func (c Currency) Symbol() string {
	unit, err := xcurrency.ParseISO(string(c))
	if err != nil {
		return "$"
	}
	return symbolPrinter.Sprint(xcurrency.NarrowSymbol(unit))
}

// separators separadores de miles y decimal para mostrar importes en la
// convención ligada a cada moneda.
func (c Currency) separators() (thousands, dec string) {
	if c == EUR {
		return ".", ","
	}
	return ",", "."
}

// Parse convierte un importe en texto a decimal.
//
// Regla de desambiguación: una única coma situada después del último punto y
// seguida de 1 o 2 dígitos es el separador decimal (los puntos son de miles);
// en cualquier otro caso las comas son de miles y el punto, si existe, el
// decimal. Sin coma, el texto se interpreta con punto decimal.
//
// Cadena vacía → 0 sin error. Texto no numérico → 0 con error, para que el
// llamador decida si lo registra como advertencia.
func Parse(raw string) (decimal.Decimal, error) {
	s := clean(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	if lastComma := strings.LastIndexByte(s, ','); lastComma >= 0 {
		lastDot := strings.LastIndexByte(s, '.')
		digitsAfter := len(s) - lastComma - 1
		if strings.Count(s, ",") == 1 && lastComma > lastDot && digitsAfter >= 1 && digitsAfter <= 2 {
			// Coma decimal: "1.500,00" → "1500.00"
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// Comas de miles: "1,500.00" → "1500.00"
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: importe no numérico %q: %w", raw, err)
	}
	return d, nil
}

// ParseOrZero variante tolerante: cualquier fallo de parseo cuenta como 0.
func ParseOrZero(raw string) decimal.Decimal {
	d, err := Parse(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format produce el importe con símbolo, miles agrupados y 2 decimales en la
// convención de la moneda: MXN/USD "$(1,500.00)", EUR "€1.500,00".
// Parse acepta sin cambios cualquier salida de Format.
func Format(d decimal.Decimal, c Currency) string {
	d = d.Round(2)
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart, fracPart := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	thousands, dec := c.separators()

	out := c.Symbol() + groupThousands(intPart, thousands) + dec + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// clean retira símbolo de moneda y espacios, dejando solo dígitos y
// separadores para el análisis.
func clean(raw string) string {
	s := strings.TrimSpace(raw)
	for _, prefix := range []string{"MX$", "US$", "$", "€"} {
		s = strings.ReplaceAll(s, prefix, "")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// groupThousands inserta el separador de miles en la parte entera.
// Ej: "1500" → "1,500", "1000000" → "1,000,000".
func groupThousands(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + (n/3)*len(sep))
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
