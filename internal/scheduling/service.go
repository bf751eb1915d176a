package scheduling

import (
	"time"

	"gorm.io/gorm"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
)

// AdvanceStatus moves an appointment to next and persists the change. The
// same-status write on a terminal appointment is a permitted no-op.
func AdvanceStatus(db *gorm.DB, appt *models.Appointment, next models.AppointmentStatus) error {
	if err := ValidateTransition(appt.Status, next); err != nil {
		return err
	}
	if next == appt.Status {
		return nil
	}
	if err := db.Model(appt).Update("status", next).Error; err != nil {
		return err
	}
	appt.Status = next
	return nil
}

// ConfirmAttendance marks that the patient confirmed they will attend. Only
// the appointment's own patient may confirm, and only while the appointment
// is confirmed by the psychologist. The status itself is left untouched.
func ConfirmAttendance(db *gorm.DB, appt *models.Appointment, patientID string) error {
	if appt.PatientID != patientID || appt.Status != models.StatusConfirmed {
		return ErrAttendanceNotAllowed
	}
	if err := db.Model(appt).Update("patient_confirmed_attendance", true).Error; err != nil {
		return err
	}
	appt.PatientConfirmedAttendance = true
	return nil
}

// RequestReschedule puts the appointment into aguardando_remarcacao on
// behalf of its patient, provided the eligibility window still allows it.
func RequestReschedule(db *gorm.DB, appt *models.Appointment, patientID string, now time.Time, loc *time.Location) error {
	if appt.PatientID != patientID || !CanReschedule(appt, now, loc) {
		return ErrRescheduleNotAllowed
	}
	if err := db.Model(appt).Update("status", models.StatusAwaitingReschedule).Error; err != nil {
		return err
	}
	appt.Status = models.StatusAwaitingReschedule
	return nil
}

// RecordDiagnosis attaches a new diagnosis to a completed appointment. The
// recording timestamp is assigned by the persistence layer at insert time.
func RecordDiagnosis(db *gorm.DB, appt *models.Appointment, description, cid10 string) (*models.Diagnosis, error) {
	if appt.Status != models.StatusDone {
		return nil, ErrDiagnosisNotAllowed
	}
	diagnosis := models.Diagnosis{
		AppointmentID: appt.ID,
		Description:   description,
		CID10:         cid10,
	}
	if err := db.Create(&diagnosis).Error; err != nil {
		return nil, err
	}
	return &diagnosis, nil
}
