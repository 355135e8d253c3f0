package dto

import "github.com/shopspring/decimal"

// Formas crudas tal como las entrega la API de movimientos. El esquema cambió
// con el tiempo: las capturas recientes usan el objeto plano "ingreso" y las
// antiguas el anidado "ingresos" con un campo por subtipo. La ingesta acepta
// ambos y normaliza a la entidad de dominio.

// RawAuthorization autorización de un cobro con tarjeta, monto en texto.
type RawAuthorization struct {
	Codigo string `json:"codigo"`
	Monto  string `json:"monto"`
}

// RawIncome esquema plano vigente del ingreso.
type RawIncome struct {
	Tipo           string             `json:"tipo"`
	Subtipo        string             `json:"subtipo"`
	MontoTotal     string             `json:"montoTotal"`
	Autorizaciones []RawAuthorization `json:"autorizaciones"`
}

// RawLegacyCash esquema histórico: un campo de monto por moneda.
type RawLegacyCash struct {
	Pesos   string `json:"pesos"`
	Dolares string `json:"dolares"`
	Euros   string `json:"euros"`
}

// RawLegacyCard esquema histórico: un campo de monto por canal de tarjeta.
type RawLegacyCard struct {
	DebitoCredito  string             `json:"debitoCredito"`
	Virtual        string             `json:"virtual"`
	Transferencias string             `json:"transferencias"`
	Autorizaciones []RawAuthorization `json:"autorizaciones"`
}

// RawLegacyIncomes contenedor del esquema histórico anidado.
type RawLegacyIncomes struct {
	Efectivo *RawLegacyCash `json:"efectivo"`
	Tarjeta  *RawLegacyCard `json:"tarjeta"`
}

// RawRoom habitación asociada al movimiento.
type RawRoom struct {
	Numero string `json:"numero"`
	Tipo   string `json:"tipo"`
}

// RawMovement un movimiento tal como viaja por el API. Exactamente uno de
// Ingreso o Ingresos debería venir poblado; la ingesta pone en cuarentena los
// registros que no cumplen.
type RawMovement struct {
	ID         string            `json:"_id" validate:"required"`
	Nombre     string            `json:"nombre"`
	Habitacion *RawRoom          `json:"habitacion"`
	FechaPago  string            `json:"fechaPago"`
	CheckIn    string            `json:"checkIn"`
	CheckOut   string            `json:"checkOut"`
	Noches     int               `json:"noches" validate:"min=0"`
	Concepto   string            `json:"concepto" validate:"required"`
	OTA        string            `json:"ota"`
	Ingreso    *RawIncome        `json:"ingreso"`
	Ingresos   *RawLegacyIncomes `json:"ingresos"`
}

// MovementDTO movimiento ya normalizado, tal como lo expone GET /api/movements.
type MovementDTO struct {
	ID             string             `json:"id"`
	Nombre         string             `json:"nombre"`
	Habitacion     string             `json:"habitacion,omitempty"`
	TipoHabitacion string             `json:"tipo_habitacion,omitempty"`
	FechaPago      string             `json:"fecha_pago,omitempty"`
	CheckIn        string             `json:"check_in,omitempty"`
	CheckOut       string             `json:"check_out,omitempty"`
	Noches         int                `json:"noches"`
	Concepto       string             `json:"concepto"`
	OTA            string             `json:"ota"`
	Tipo           string             `json:"tipo"`
	Subtipo        string             `json:"subtipo"`
	Monto          decimal.Decimal    `json:"monto"`
	Autorizaciones []AuthorizationDTO `json:"autorizaciones,omitempty"`
}

// AuthorizationDTO autorización normalizada de un cobro con tarjeta.
type AuthorizationDTO struct {
	Codigo string          `json:"codigo"`
	Monto  decimal.Decimal `json:"monto"`
}
