package scheduling

import (
	"time"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
)

// RescheduleWindow is how long before the scheduled instant a patient may
// still request a reschedule.
const RescheduleWindow = 6 * time.Hour

// ScheduledAt combines the appointment's civil date and time in loc.
func ScheduledAt(appt *models.Appointment, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(
		models.ScheduleDateLayout+" "+models.ScheduleTimeLayout,
		appt.ScheduledDate+" "+appt.ScheduledTime,
		loc,
	)
}

// CanReschedule reports whether the appointment may still be rescheduled at
// instant now. Only pending and confirmed appointments qualify, and only
// strictly more than RescheduleWindow before the scheduled instant. A
// missing or malformed date/time disallows the reschedule rather than
// raising an error: when in doubt, the answer is no.
func CanReschedule(appt *models.Appointment, now time.Time, loc *time.Location) bool {
	if appt.Status != models.StatusPending && appt.Status != models.StatusConfirmed {
		return false
	}

	scheduled, err := ScheduledAt(appt, loc)
	if err != nil {
		return false
	}

	return now.Before(scheduled.Add(-RescheduleWindow))
}
