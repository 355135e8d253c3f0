package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidDateRange = errors.New("rango de fechas inválido")
	ErrUpstream         = errors.New("error consultando la API de movimientos")
	ErrUnknownCategory  = errors.New("tipo o subtipo de ingreso desconocido")
	ErrUnknownConcept   = errors.New("concepto desconocido")
)
