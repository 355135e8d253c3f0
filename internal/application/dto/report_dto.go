package dto

// DTOs de salida de las tres superficies de reporte. Todos los importes
// llegan ya formateados como texto de moneda; los cálculos quedaron atrás,
// en el agregador.

// TotalsDTO bloque de totales del tablero.
type TotalsDTO struct {
	EfectivoMXN string `json:"efectivo_mxn"`
	EfectivoUSD string `json:"efectivo_usd"`
	EfectivoEUR string `json:"efectivo_eur"`

	TarjetaDebitoCredito string `json:"tarjeta_debito_credito"`
	TarjetasVirtuales    string `json:"tarjetas_virtuales"`
	Transferencias       string `json:"transferencias"`

	CobroEstancia string `json:"cobro_estancia"`
	Amenidades    string `json:"amenidades"`

	Booking string `json:"booking"`
	Expedia string `json:"expedia"`
	Directa string `json:"directa"`

	TotalGeneral        string `json:"total_general"`
	TarifaPromedioNoche string `json:"tarifa_promedio_noche"`
	NochesVendidas      int    `json:"noches_vendidas"`
}

// MovementRowDTO una fila de tabla de detalle.
type MovementRowDTO struct {
	Numero         int    `json:"numero"`
	FechaPago      string `json:"fecha_pago"`
	Nombre         string `json:"nombre"`
	Habitacion     string `json:"habitacion"`
	TipoHabitacion string `json:"tipo_habitacion"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Autorizacion   string `json:"autorizacion,omitempty"`
	Importe        string `json:"importe"`
	Concepto       string `json:"concepto"`
	OTA            string `json:"ota"`
}

// OTATableDTO tabla de estancia de una categoría agrupada por canal.
type OTATableDTO struct {
	OTA      string           `json:"ota"`
	Rows     []MovementRowDTO `json:"rows"`
	Subtotal string           `json:"subtotal"`
}

// FlatTableDTO tabla plana (amenidades) con fila de subtotal.
type FlatTableDTO struct {
	Rows     []MovementRowDTO `json:"rows"`
	Subtotal string           `json:"subtotal"`
}

// CategoryTablesDTO las tablas de una de las seis categorías de pago.
type CategoryTablesDTO struct {
	Categoria  string        `json:"categoria"`
	Estancia   []OTATableDTO `json:"estancia"`
	Amenidades FlatTableDTO  `json:"amenidades"`
}

// DashboardDTO view-model completo del tablero general.
type DashboardDTO struct {
	Periodo      string              `json:"periodo,omitempty"`
	Totales      TotalsDTO           `json:"totales"`
	Categorias   []CategoryTablesDTO `json:"categorias"`
	Advertencias []string            `json:"advertencias,omitempty"`
}

// PDFTable mini-tabla de la primera página del PDF.
type PDFTable struct {
	Titulo string
	Head   []string
	Body   [][]string
}

// PDFDetailBlock bloque de detalle del PDF: subtipo → concepto → OTA.
type PDFDetailBlock struct {
	Subtipo  string
	Concepto string
	OTA      string
	Head     []string
	Rows     [][]string
	Subtotal string
}

// PDFReport documento completo listo para renderizar.
type PDFReport struct {
	Titulo     string
	GeneradoEn string
	Periodo    string
	SinDatos   bool
	Resumen    []PDFTable
	Detalle    []PDFDetailBlock
}
