package models

// Patient is the patient role extension of a Profile
type Patient struct {
	BaseModel
	ProfileID  string `gorm:"size:36;uniqueIndex;not null" json:"profileId"`
	Guardian   string `gorm:"size:100" json:"guardian,omitempty"`
	HealthPlan string `gorm:"size:100" json:"healthPlan,omitempty"`

	// Relations
	Profile      Profile       `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}
