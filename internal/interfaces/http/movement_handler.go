package http

import (
	"github.com/gofiber/fiber/v2"

	appreport "github.com/frontdesk/ingresos-api/internal/application/report"
)

// MovementHandler expone los movimientos ya normalizados, con sus
// diagnósticos de ingesta (montos ilegibles y registros en cuarentena).
type MovementHandler struct {
	uc *appreport.MovementsUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *appreport.MovementsUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List lista los movimientos normalizados del período.
// GET /api/movements?from=...&to=...
func (h *MovementHandler) List(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return badRange(c, err)
	}

	list, err := h.uc.List(c.Context(), criteria)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(list)
}
