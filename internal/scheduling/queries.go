package scheduling

import (
	"time"

	"gorm.io/gorm"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
)

// Display bounds for the dashboards and page sizes for the history views.
const (
	UpcomingLimit  = 3
	CompletedLimit = 5
	CancelledLimit = 3

	HistoryPageSize     = 10
	PairHistoryPageSize = 15
	PatientsPageSize    = 10
)

// actionable are the statuses a dashboard still cares about.
var actionable = []models.AppointmentStatus{
	models.StatusConfirmed,
	models.StatusPending,
}

// Paginate is a gorm scope applying 1-based page pagination.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// PatientDashboard is the patient's landing view: the next few actionable
// appointments plus short recent completed/cancelled history.
type PatientDashboard struct {
	Upcoming  []models.Appointment `json:"upcoming"`
	Completed []models.Appointment `json:"completed"`
	Cancelled []models.Appointment `json:"cancelled"`
}

// LoadPatientDashboard builds the three dashboard lists for a patient.
// Upcoming excludes today's appointments whose time has already passed.
func LoadPatientDashboard(db *gorm.DB, patientID string, now time.Time, loc *time.Location) (*PatientDashboard, error) {
	local := now.In(loc)
	today := local.Format(models.ScheduleDateLayout)
	clock := local.Format(models.ScheduleTimeLayout)

	dash := &PatientDashboard{}

	err := db.Preload("Psychologist.Profile").
		Where("patient_id = ? AND status IN ? AND scheduled_date >= ?", patientID, actionable, today).
		Where("NOT (scheduled_date = ? AND scheduled_time < ?)", today, clock).
		Order("scheduled_date asc, scheduled_time asc").
		Limit(UpcomingLimit).
		Find(&dash.Upcoming).Error
	if err != nil {
		return nil, err
	}

	err = db.Preload("Psychologist.Profile").
		Where("patient_id = ? AND status = ?", patientID, models.StatusDone).
		Order("scheduled_date desc, scheduled_time desc").
		Limit(CompletedLimit).
		Find(&dash.Completed).Error
	if err != nil {
		return nil, err
	}

	err = db.Preload("Psychologist.Profile").
		Where("patient_id = ? AND status = ?", patientID, models.StatusCancelled).
		Order("scheduled_date desc, scheduled_time desc").
		Limit(CancelledLimit).
		Find(&dash.Cancelled).Error
	if err != nil {
		return nil, err
	}

	return dash, nil
}

// PatientHistory returns one page of the patient's full appointment list,
// most recent first.
func PatientHistory(db *gorm.DB, patientID string, page int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Preload("Psychologist.Profile").
		Where("patient_id = ?", patientID).
		Order("scheduled_date desc, scheduled_time desc").
		Scopes(Paginate(page, HistoryPageSize)).
		Find(&appointments).Error
	return appointments, err
}

// PsychologistToday returns the psychologist's actionable appointments for
// the current day, earliest first.
func PsychologistToday(db *gorm.DB, psychologistID string, now time.Time, loc *time.Location) ([]models.Appointment, error) {
	today := now.In(loc).Format(models.ScheduleDateLayout)

	var appointments []models.Appointment
	err := db.Preload("Patient.Profile").
		Where("psychologist_id = ? AND scheduled_date = ? AND status IN ?", psychologistID, today, actionable).
		Order("scheduled_time asc").
		Find(&appointments).Error
	return appointments, err
}

// PsychologistAgenda returns one page of the psychologist's full agenda,
// most recent first.
func PsychologistAgenda(db *gorm.DB, psychologistID string, page int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Preload("Patient.Profile").
		Where("psychologist_id = ?", psychologistID).
		Order("scheduled_date desc, scheduled_time desc").
		Scopes(Paginate(page, HistoryPageSize)).
		Find(&appointments).Error
	return appointments, err
}

// PsychologistPatients returns one page of the distinct patients who have
// ever held an appointment with this psychologist, ordered by name.
func PsychologistPatients(db *gorm.DB, psychologistID string, page int) ([]models.Patient, error) {
	seen := db.Model(&models.Appointment{}).
		Select("DISTINCT patient_id").
		Where("psychologist_id = ?", psychologistID)

	var patients []models.Patient
	err := db.Preload("Profile").
		Joins("JOIN profiles ON profiles.id = patients.profile_id").
		Where("patients.id IN (?)", seen).
		Order("profiles.full_name asc").
		Scopes(Paginate(page, PatientsPageSize)).
		Find(&patients).Error
	return patients, err
}

// PairHistory returns one page of the full history between one patient and
// one psychologist, most recent first, with attached diagnoses.
func PairHistory(db *gorm.DB, psychologistID, patientID string, page int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Preload("Patient.Profile").
		Preload("Diagnoses").
		Where("psychologist_id = ? AND patient_id = ?", psychologistID, patientID).
		Order("scheduled_date desc, scheduled_time desc").
		Scopes(Paginate(page, PairHistoryPageSize)).
		Find(&appointments).Error
	return appointments, err
}

// CompletedForDiagnosis lists the psychologist's completed appointments,
// the ones a diagnosis may still be recorded against, most recent first.
func CompletedForDiagnosis(db *gorm.DB, psychologistID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Preload("Patient.Profile").
		Where("psychologist_id = ? AND status = ?", psychologistID, models.StatusDone).
		Order("scheduled_date desc, scheduled_time desc").
		Find(&appointments).Error
	return appointments, err
}
