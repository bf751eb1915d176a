package scheduling

import (
	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
)

// statuses is the closed set of valid appointment statuses.
var statuses = []models.AppointmentStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusAwaitingReschedule,
	models.StatusCancelled,
	models.StatusDone,
}

// ParseStatus validates a raw status value from user input.
func ParseStatus(raw string) (models.AppointmentStatus, error) {
	for _, s := range statuses {
		if models.AppointmentStatus(raw) == s {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// ValidateTransition checks whether an appointment currently in cur may move
// to next. Any non-terminal status may move to any other status; the only
// hard rule is that cancelled and completed appointments are frozen (a
// same-status write is allowed as a no-op).
func ValidateTransition(cur, next models.AppointmentStatus) error {
	if _, err := ParseStatus(string(next)); err != nil {
		return err
	}
	if cur.Terminal() && next != cur {
		return ErrTerminalState
	}
	return nil
}
