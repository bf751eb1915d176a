package models

// Psychologist is the psychologist role extension of a Profile.
// CRP is the Brazilian regional psychology-council registration number.
type Psychologist struct {
	BaseModel
	ProfileID string `gorm:"size:36;uniqueIndex;not null" json:"profileId"`
	CRP       string `gorm:"size:20;uniqueIndex;not null" json:"crp"`
	Specialty string `gorm:"size:100" json:"specialty,omitempty"`

	// Relations
	Profile      Profile             `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Appointments []Appointment       `gorm:"foreignKey:PsychologistID" json:"-"`
	Affiliations []ClinicAffiliation `gorm:"foreignKey:PsychologistID" json:"-"`
}
