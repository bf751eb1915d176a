package scheduling

import "errors"

// Domain failures. Handlers recover every one of these into a user-facing
// notice; none should surface as a 500.
var (
	// ErrInvalidStatus means the requested status is not one of the five
	// defined status values.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrTerminalState means a transition out of a cancelled or completed
	// appointment was attempted.
	ErrTerminalState = errors.New("appointment is in a terminal state")

	// ErrAttendanceNotAllowed covers both a non-owning patient and an
	// appointment that is not currently confirmed.
	ErrAttendanceNotAllowed = errors.New("attendance can only be confirmed by the appointment's patient on a confirmed appointment")

	// ErrDiagnosisNotAllowed means the appointment has not been completed yet.
	ErrDiagnosisNotAllowed = errors.New("diagnoses can only be recorded for completed appointments")

	// ErrRescheduleNotAllowed covers ownership, status and the time window.
	ErrRescheduleNotAllowed = errors.New("reschedule can no longer be requested for this appointment")
)
