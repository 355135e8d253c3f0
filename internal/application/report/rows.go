package report

import (
	"time"

	"github.com/frontdesk/ingresos-api/internal/domain/entity"
)

// Helpers de formato compartidos por los constructores de las tres
// superficies; cualquier cambio de presentación se hace una sola vez aquí.

const naCell = "N/A"

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

func roomNumber(m entity.Movement) string {
	if m.Room.Number == "" {
		return naCell
	}
	return m.Room.Number
}

func roomType(m entity.Movement) string {
	if m.Room.Type == "" {
		return naCell
	}
	return m.Room.Type
}

func guestName(m entity.Movement) string {
	if m.GuestName == "" {
		return naCell
	}
	return m.GuestName
}

func firstAuthCode(m entity.Movement) string {
	if len(m.Income.Authorizations) == 0 {
		return naCell
	}
	return m.Income.Authorizations[0].Code
}
