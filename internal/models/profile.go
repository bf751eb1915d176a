package models

// Profile holds the personal data shared by both roles, layered on top of
// the User account. Whether the person is a patient or a psychologist is a
// separate 1:1 extension (Patient / Psychologist); a Profile with neither
// extension is considered incomplete.
type Profile struct {
	BaseModel
	UserID     string `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	CPF        string `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	FullName   string `gorm:"size:100;not null" json:"fullName"`
	Age        *int   `json:"age,omitempty"`
	Street     string `gorm:"size:100" json:"street,omitempty"`
	Number     string `gorm:"size:10" json:"number,omitempty"`
	District   string `gorm:"size:50" json:"district,omitempty"`
	City       string `gorm:"size:50" json:"city,omitempty"`
	PostalCode string `gorm:"size:8" json:"postalCode,omitempty"`

	// Relations
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Phones       []Phone       `gorm:"foreignKey:ProfileID" json:"phones,omitempty"`
	Patient      *Patient      `gorm:"foreignKey:ProfileID" json:"patient,omitempty"`
	Psychologist *Psychologist `gorm:"foreignKey:ProfileID" json:"psychologist,omitempty"`
}

// Phone is one of possibly many contact numbers for a Profile
type Phone struct {
	BaseModel
	ProfileID string `gorm:"size:36;index;not null" json:"profileId"`
	Number    string `gorm:"size:15;not null" json:"number"`
}
