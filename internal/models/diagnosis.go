package models

import (
	"time"
)

// Diagnosis is a formal diagnosis (optionally coded as ICD-10) attached to
// a completed appointment. An appointment may carry several.
type Diagnosis struct {
	BaseModel
	AppointmentID string    `gorm:"size:36;index;not null" json:"appointmentId"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	CID10         string    `gorm:"size:10" json:"cid10,omitempty"`
	RecordedAt    time.Time `gorm:"autoCreateTime" json:"recordedAt"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}
