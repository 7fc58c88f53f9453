package models

import (
	"time"

	"gorm.io/datatypes"
)

// Medical record types.
const (
	RecordConsultation = "consultation"
	RecordDiagnosis    = "diagnosis"
	RecordTreatment    = "treatment"
	RecordLabResult    = "lab_result"
)

// MedicalRecord is immutable history: updates may append fields but a
// record is never deleted.
type MedicalRecord struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	PatientID      uint           `gorm:"not null;index" json:"patientId"`
	DoctorID       uint           `gorm:"not null;index" json:"doctorId"`
	AppointmentID  *uint          `gorm:"index" json:"appointmentId,omitempty"`
	RecordType     string         `gorm:"size:30;not null" json:"recordType"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description,omitempty"`
	Diagnosis      string         `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment      string         `gorm:"type:text" json:"treatment,omitempty"`
	Attachments    datatypes.JSON `json:"attachments,omitempty"`
	IsConfidential bool           `gorm:"default:false" json:"isConfidential"`
	CreatedAt      time.Time      `json:"createdAt"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for MedicalRecord model
func (MedicalRecord) TableName() string {
	return "medical_records"
}

// ValidRecordType reports whether t is a member of the closed record type set.
func ValidRecordType(t string) bool {
	switch t {
	case RecordConsultation, RecordDiagnosis, RecordTreatment, RecordLabResult:
		return true
	}
	return false
}
