package models

import (
	"time"

	"gorm.io/datatypes"
)

// Patient extends a User with demographic and insurance details. The
// Aadhaar number, when present, is exactly 12 digits and unique;
// aadhaar_verified is a one-way flag set only by the verification
// operation, never at creation.
type Patient struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	UserID            uint           `gorm:"not null;uniqueIndex" json:"userId"`
	AadhaarNumber     *string        `gorm:"size:12;uniqueIndex" json:"aadhaarNumber,omitempty"`
	AadhaarVerified   bool           `gorm:"default:false" json:"aadhaarVerified"`
	DateOfBirth       *time.Time     `json:"dateOfBirth,omitempty"`
	Gender            string         `gorm:"size:20" json:"gender,omitempty"`
	BloodGroup        string         `gorm:"size:5" json:"bloodGroup,omitempty"`
	EmergencyContact  string         `gorm:"size:100" json:"emergencyContact,omitempty"`
	Address           string         `gorm:"type:text" json:"address,omitempty"`
	InsuranceProvider string         `gorm:"size:100" json:"insuranceProvider,omitempty"`
	InsuranceNumber   string         `gorm:"size:50" json:"insuranceNumber,omitempty"`
	MedicalHistory    datatypes.JSON `json:"medicalHistory,omitempty"`
	Allergies         string         `gorm:"type:text" json:"allergies,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
