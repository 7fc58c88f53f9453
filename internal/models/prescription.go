package models

import (
	"time"

	"gorm.io/datatypes"
)

// PrescriptionStatus is the closed status set for prescriptions.
type PrescriptionStatus string

const (
	PrescriptionActive    PrescriptionStatus = "active"
	PrescriptionCompleted PrescriptionStatus = "completed"
	PrescriptionCancelled PrescriptionStatus = "cancelled"
)

// Medication is one entry of a prescription's structured medication list.
type Medication struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
	Duration  string `json:"duration" binding:"required"`
}

// Prescription belongs to one patient and one doctor, optionally linked
// to an appointment. Medications is a JSON array of Medication entries.
type Prescription struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	PatientID        uint               `gorm:"not null;index" json:"patientId"`
	DoctorID         uint               `gorm:"not null;index" json:"doctorId"`
	AppointmentID    *uint              `gorm:"index" json:"appointmentId,omitempty"`
	Medications      datatypes.JSON     `gorm:"not null" json:"medications"`
	Instructions     string             `gorm:"type:text" json:"instructions,omitempty"`
	Status           PrescriptionStatus `gorm:"size:20;default:'active'" json:"status"`
	ValidUntil       *time.Time         `json:"validUntil,omitempty"`
	DigitalSignature string             `gorm:"size:255" json:"digitalSignature,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Prescription model
func (Prescription) TableName() string {
	return "prescriptions"
}

// Valid reports whether s is a member of the closed status set.
func (s PrescriptionStatus) Valid() bool {
	switch s {
	case PrescriptionActive, PrescriptionCompleted, PrescriptionCancelled:
		return true
	}
	return false
}
