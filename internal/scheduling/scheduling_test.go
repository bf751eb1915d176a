package scheduling

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/models"
)

// newTestDB opens an in-memory SQLite database migrated with the full model
// set. A single connection keeps the memory database alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

var seedCounter int

// seedPair creates a user+profile+extension pair for each role and returns
// the patient and psychologist rows.
func seedPair(t *testing.T, db *gorm.DB) (*models.Patient, *models.Psychologist) {
	t.Helper()
	return seedPatient(t, db, "Ana Souza"), seedPsychologist(t, db, "Tatiane Lima")
}

func seedPatient(t *testing.T, db *gorm.DB, name string) *models.Patient {
	t.Helper()
	seedCounter++

	user := models.User{Email: fmt.Sprintf("patient%d@example.com", seedCounter)}
	require.NoError(t, user.SetPassword("s3cret-pass"))
	require.NoError(t, db.Create(&user).Error)

	profile := models.Profile{
		UserID:   user.ID,
		CPF:      fmt.Sprintf("%011d", seedCounter),
		FullName: name,
	}
	require.NoError(t, db.Create(&profile).Error)

	patient := models.Patient{ProfileID: profile.ID}
	require.NoError(t, db.Create(&patient).Error)
	patient.Profile = profile
	return &patient
}

func seedPsychologist(t *testing.T, db *gorm.DB, name string) *models.Psychologist {
	t.Helper()
	seedCounter++

	user := models.User{Email: fmt.Sprintf("psy%d@example.com", seedCounter)}
	require.NoError(t, user.SetPassword("s3cret-pass"))
	require.NoError(t, db.Create(&user).Error)

	profile := models.Profile{
		UserID:   user.ID,
		CPF:      fmt.Sprintf("%011d", seedCounter),
		FullName: name,
	}
	require.NoError(t, db.Create(&profile).Error)

	psychologist := models.Psychologist{
		ProfileID: profile.ID,
		CRP:       fmt.Sprintf("06/%06d", seedCounter),
	}
	require.NoError(t, db.Create(&psychologist).Error)
	psychologist.Profile = profile
	return &psychologist
}

func seedAppointment(t *testing.T, db *gorm.DB, patient *models.Patient, psy *models.Psychologist, date, clock string, status models.AppointmentStatus) *models.Appointment {
	t.Helper()

	appt := models.Appointment{
		PatientID:      patient.ID,
		PsychologistID: psy.ID,
		ScheduledDate:  date,
		ScheduledTime:  clock,
		Status:         status,
	}
	require.NoError(t, db.Create(&appt).Error)
	return &appt
}
