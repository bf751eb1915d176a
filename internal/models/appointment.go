package models

// AppointmentStatus represents the status of an appointment. The stored
// values and their display labels are an external contract shared with the
// clinic's front end and must round-trip exactly.
type AppointmentStatus string

const (
	StatusPending            AppointmentStatus = "pendente"
	StatusConfirmed          AppointmentStatus = "confirmada"
	StatusAwaitingReschedule AppointmentStatus = "aguardando_remarcacao"
	StatusCancelled          AppointmentStatus = "cancelada"
	StatusDone               AppointmentStatus = "realizada"
)

// Label returns the human-readable display label for a status
func (s AppointmentStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusConfirmed:
		return "Confirmada"
	case StatusAwaitingReschedule:
		return "Aguardando Remarcação"
	case StatusCancelled:
		return "Cancelada"
	case StatusDone:
		return "Realizada"
	}
	return string(s)
}

// Terminal reports whether no further transitions are permitted out of s
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusDone
}

// Layouts for the scheduled date and time columns. Both are stored as
// zero-padded strings so that lexical ordering in SQL matches chronological
// ordering.
const (
	ScheduleDateLayout = "2006-01-02"
	ScheduleTimeLayout = "15:04"
)

// Appointment is a scheduled meeting between one patient and one
// psychologist. Appointments are never deleted; cancellation is a status.
type Appointment struct {
	BaseModel
	PatientID      string `gorm:"size:36;index;not null" json:"patientId"`
	PsychologistID string `gorm:"size:36;index;not null" json:"psychologistId"`

	ScheduledDate string            `gorm:"size:10;index" json:"scheduledDate"`
	ScheduledTime string            `gorm:"size:5" json:"scheduledTime"`
	Status        AppointmentStatus `gorm:"size:25;default:'pendente'" json:"status"`

	// Set once the patient confirms they will attend; independent of Status.
	PatientConfirmedAttendance bool `gorm:"default:false" json:"patientConfirmedAttendance"`

	Note          string `gorm:"type:text" json:"note,omitempty"`
	Prescription  string `gorm:"type:text" json:"prescription,omitempty"`
	DiagnosisText string `gorm:"type:text" json:"diagnosisText,omitempty"` // legacy free-text field

	// Relations
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Psychologist Psychologist `gorm:"foreignKey:PsychologistID" json:"psychologist,omitempty"`
	Diagnoses    []Diagnosis  `gorm:"foreignKey:AppointmentID" json:"diagnoses,omitempty"`
}
