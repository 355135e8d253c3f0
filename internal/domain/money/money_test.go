package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontdesk/ingresos-api/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Parse: las dos convenciones históricas de captura deben converger al mismo
// decimal. Esta tabla es el contrato del parser; cualquier cambio en la regla
// de desambiguación debe pasar por aquí.
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_ConvencionesMixtas(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"punto de miles y coma decimal", "1.234,56", "1234.56"},
		{"coma decimal sin miles", "1234,56", "1234.56"},
		{"coma de miles y punto decimal", "1,234.56", "1234.56"},
		{"coma decimal corta", "100,00", "100"},
		{"una coma seguida de tres dígitos es de miles", "1,500", "1500"},
		{"varios grupos de miles con coma", "1,234,567.89", "1234567.89"},
		{"varios grupos de miles con punto", "1.234.567,89", "1234567.89"},
		{"punto decimal simple", "1500.00", "1500"},
		{"sin separadores", "800", "800"},
		{"un decimal tras la coma", "1,5", "1.5"},
		{"sin coma el punto es decimal", "1.500", "1.5"},
		{"símbolo de pesos", "$1,500.00", "1500"},
		{"símbolo de euros", "€1.500,00", "1500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.Parse(tc.raw)
			require.NoError(t, err, "el importe %q debe parsear sin error", tc.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"Parse(%q) = %s, se esperaba %s", tc.raw, got, tc.want)
		})
	}
}

func TestParse_VacioEsCeroSinError(t *testing.T) {
	got, err := money.Parse("")
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "cadena vacía debe valer 0")

	got, err = money.Parse("   ")
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "solo espacios debe valer 0")
}

func TestParse_NoNumericoDevuelveCeroConError(t *testing.T) {
	got, err := money.Parse("abc")
	assert.Error(t, err, "texto no numérico debe reportar error")
	assert.True(t, got.IsZero(), "ante error el importe siempre es 0, nunca NaN")

	assert.True(t, money.ParseOrZero("abc").IsZero(),
		"ParseOrZero absorbe el error y devuelve 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Format y la ley de ida y vuelta: Parse(Format(x)) == x al centavo, en las
// tres monedas. Si esto se rompe, los subtotales de pantalla, Excel y PDF
// dejan de coincidir entre sí.
// ──────────────────────────────────────────────────────────────────────────────

func TestFormat_ConvencionPorMoneda(t *testing.T) {
	v := decimal.RequireFromString("1500")

	assert.Equal(t, "$1,500.00", money.Format(v, money.MXN))
	assert.Equal(t, "$1,500.00", money.Format(v, money.USD))
	assert.Equal(t, "€1.500,00", money.Format(v, money.EUR))
}

func TestFormat_AgrupacionDeMiles(t *testing.T) {
	v := decimal.RequireFromString("1234567.89")

	assert.Equal(t, "$1,234,567.89", money.Format(v, money.MXN))
	assert.Equal(t, "€1.234.567,89", money.Format(v, money.EUR))
}

func TestFormat_CeroYNegativo(t *testing.T) {
	assert.Equal(t, "$0.00", money.Format(decimal.Zero, money.MXN),
		"el cero debe formatear sin pánico")
	assert.Equal(t, "-$25.50", money.Format(decimal.RequireFromString("-25.5"), money.MXN),
		"los negativos no se esperan del dominio pero no deben romper el formateo")
}

func TestFormatParse_IdaYVuelta(t *testing.T) {
	values := []string{"0", "0.5", "7", "999.99", "1500", "12345.67", "1234567.89"}
	currencies := []money.Currency{money.MXN, money.USD, money.EUR}

	for _, raw := range values {
		want := decimal.RequireFromString(raw).Round(2)
		for _, cur := range currencies {
			formatted := money.Format(want, cur)
			got, err := money.Parse(formatted)
			require.NoError(t, err, "Parse debe aceptar la propia salida de Format: %q", formatted)
			assert.True(t, got.Equal(want),
				"ida y vuelta en %s: %s → %q → %s", cur, want, formatted, got)
		}
	}
}

// Escenario de referencia: un cobro capturado como "1.500,00" debe valer
// 1500.00 y volver a pantalla como "$1,500.00".
func TestParseFormat_EscenarioEstanciaEnPesos(t *testing.T) {
	d, err := money.Parse("1.500,00")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "$1,500.00", money.Format(d, money.MXN))
}

func TestCurrency_SimboloYValidez(t *testing.T) {
	assert.Equal(t, "$", money.MXN.Symbol())
	assert.Equal(t, "$", money.USD.Symbol())
	assert.Equal(t, "€", money.EUR.Symbol())

	assert.True(t, money.MXN.Valid())
	assert.False(t, money.Currency("XXX_NO").Valid())
}
