package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
)

func TestLoadPatientDashboard(t *testing.T) {
	db := newTestDB(t)
	patient, psy := seedPair(t, db)
	loc := time.UTC
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)

	// four qualifying upcoming appointments, plus one today whose time has
	// already passed and one awaiting reschedule that never qualifies
	seedAppointment(t, db, patient, psy, "2025-03-10", "10:00", models.StatusConfirmed) // past today
	seedAppointment(t, db, patient, psy, "2025-03-10", "14:00", models.StatusConfirmed)
	seedAppointment(t, db, patient, psy, "2025-03-11", "09:00", models.StatusPending)
	seedAppointment(t, db, patient, psy, "2025-03-12", "08:00", models.StatusConfirmed)
	seedAppointment(t, db, patient, psy, "2025-03-12", "10:00", models.StatusPending)
	seedAppointment(t, db, patient, psy, "2025-03-13", "10:00", models.StatusAwaitingReschedule)

	// six completed, four cancelled
	for _, date := range []string{"2025-01-01", "2025-01-08", "2025-01-15", "2025-01-22", "2025-01-29", "2025-02-05"} {
		seedAppointment(t, db, patient, psy, date, "10:00", models.StatusDone)
	}
	for _, date := range []string{"2024-12-01", "2024-12-08", "2024-12-15", "2024-12-22"} {
		seedAppointment(t, db, patient, psy, date, "10:00", models.StatusCancelled)
	}

	dash, err := LoadPatientDashboard(db, patient.ID, now, loc)
	require.NoError(t, err)

	require.Len(t, dash.Upcoming, UpcomingLimit)
	assert.Equal(t, "2025-03-10", dash.Upcoming[0].ScheduledDate)
	assert.Equal(t, "14:00", dash.Upcoming[0].ScheduledTime)
	assert.Equal(t, "2025-03-11", dash.Upcoming[1].ScheduledDate)
	assert.Equal(t, "2025-03-12", dash.Upcoming[2].ScheduledDate)
	assert.Equal(t, "08:00", dash.Upcoming[2].ScheduledTime)

	require.Len(t, dash.Completed, CompletedLimit)
	assert.Equal(t, "2025-02-05", dash.Completed[0].ScheduledDate, "most recent first")
	assert.Equal(t, "2025-01-08", dash.Completed[4].ScheduledDate)

	require.Len(t, dash.Cancelled, CancelledLimit)
	assert.Equal(t, "2024-12-22", dash.Cancelled[0].ScheduledDate)
}

func TestPatientHistoryPagination(t *testing.T) {
	db := newTestDB(t)
	patient, psy := seedPair(t, db)

	for day := 1; day <= 12; day++ {
		seedAppointment(t, db, patient, psy,
			time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC).Format(models.ScheduleDateLayout),
			"10:00", models.StatusDone)
	}

	first, err := PatientHistory(db, patient.ID, 1)
	require.NoError(t, err)
	require.Len(t, first, HistoryPageSize)
	assert.Equal(t, "2025-02-12", first[0].ScheduledDate, "most recent first")

	second, err := PatientHistory(db, patient.ID, 2)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "2025-02-02", second[0].ScheduledDate)
}

func TestPsychologistToday(t *testing.T) {
	db := newTestDB(t)
	patient, psy := seedPair(t, db)
	loc := time.UTC
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, loc)

	seedAppointment(t, db, patient, psy, "2025-03-10", "14:00", models.StatusConfirmed)
	seedAppointment(t, db, patient, psy, "2025-03-10", "09:00", models.StatusPending)
	seedAppointment(t, db, patient, psy, "2025-03-10", "11:00", models.StatusCancelled) // not actionable
	seedAppointment(t, db, patient, psy, "2025-03-11", "10:00", models.StatusConfirmed) // tomorrow

	today, err := PsychologistToday(db, psy.ID, now, loc)
	require.NoError(t, err)

	require.Len(t, today, 2)
	assert.Equal(t, "09:00", today[0].ScheduledTime, "ascending by time")
	assert.Equal(t, "14:00", today[1].ScheduledTime)
	assert.Equal(t, patient.Profile.FullName, today[0].Patient.Profile.FullName, "patient preloaded")
}

func TestPsychologistPatientsDistinct(t *testing.T) {
	db := newTestDB(t)
	carla := seedPatient(t, db, "Carla Dias")
	ana := seedPatient(t, db, "Ana Souza")
	stranger := seedPatient(t, db, "Nunca Consultou")
	psy := seedPsychologist(t, db, "Tatiane Lima")

	// several appointments per patient must still yield one row each
	seedAppointment(t, db, ana, psy, "2025-01-01", "10:00", models.StatusDone)
	seedAppointment(t, db, ana, psy, "2025-01-08", "10:00", models.StatusDone)
	seedAppointment(t, db, carla, psy, "2025-01-02", "10:00", models.StatusCancelled)
	_ = stranger

	patients, err := PsychologistPatients(db, psy.ID, 1)
	require.NoError(t, err)

	require.Len(t, patients, 2)
	assert.Equal(t, "Ana Souza", patients[0].Profile.FullName, "ordered by name")
	assert.Equal(t, "Carla Dias", patients[1].Profile.FullName)
}

func TestPairHistoryIncludesDiagnoses(t *testing.T) {
	db := newTestDB(t)
	patient, psy := seedPair(t, db)
	otherPsy := seedPsychologist(t, db, "Outro Profissional")

	done := seedAppointment(t, db, patient, psy, "2025-01-01", "10:00", models.StatusDone)
	_, err := RecordDiagnosis(db, done, "transtorno de ansiedade", "F41.1")
	require.NoError(t, err)

	seedAppointment(t, db, patient, psy, "2025-01-08", "10:00", models.StatusDone)
	seedAppointment(t, db, patient, otherPsy, "2025-01-09", "10:00", models.StatusDone) // other pair

	history, err := PairHistory(db, psy.ID, patient.ID, 1)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "2025-01-08", history[0].ScheduledDate, "most recent first")
	require.Len(t, history[1].Diagnoses, 1)
	assert.Equal(t, "F41.1", history[1].Diagnoses[0].CID10)
}

func TestCompletedForDiagnosis(t *testing.T) {
	db := newTestDB(t)
	patient, psy := seedPair(t, db)

	seedAppointment(t, db, patient, psy, "2025-01-01", "10:00", models.StatusDone)
	seedAppointment(t, db, patient, psy, "2025-01-08", "10:00", models.StatusDone)
	seedAppointment(t, db, patient, psy, "2025-01-15", "10:00", models.StatusConfirmed)

	list, err := CompletedForDiagnosis(db, psy.ID)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "2025-01-08", list[0].ScheduledDate)
}
