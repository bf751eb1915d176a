package models

// Clinic is a physical location where psychologists see patients
type Clinic struct {
	BaseModel
	Name       string   `gorm:"size:100;not null" json:"name"`
	Address    string   `gorm:"size:150" json:"address,omitempty"`
	City       string   `gorm:"size:50" json:"city,omitempty"`
	State      string   `gorm:"size:2" json:"state,omitempty"`
	PostalCode string   `gorm:"size:8" json:"postalCode,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	Affiliations []ClinicAffiliation `gorm:"foreignKey:ClinicID" json:"affiliations,omitempty"`
}

// ClinicAffiliation links a psychologist to a clinic and carries the
// free-text working schedule for that pair. A psychologist appears at most
// once per clinic.
type ClinicAffiliation struct {
	BaseModel
	ClinicID       string `gorm:"size:36;uniqueIndex:idx_clinic_psychologist;not null" json:"clinicId"`
	PsychologistID string `gorm:"size:36;uniqueIndex:idx_clinic_psychologist;not null" json:"psychologistId"`
	WorkSchedule   string `gorm:"size:100" json:"workSchedule,omitempty"`

	Clinic       Clinic       `gorm:"foreignKey:ClinicID" json:"-"`
	Psychologist Psychologist `gorm:"foreignKey:PsychologistID" json:"psychologist,omitempty"`
}
