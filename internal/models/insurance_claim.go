package models

import "time"

// ClaimStatus is the closed status set for insurance claims.
type ClaimStatus string

const (
	ClaimSubmitted  ClaimStatus = "submitted"
	ClaimProcessing ClaimStatus = "processing"
	ClaimApproved   ClaimStatus = "approved"
	ClaimRejected   ClaimStatus = "rejected"
)

// InsuranceClaim belongs to one patient, optionally linked to an
// appointment and/or a lab test. The claim number is minted at
// creation and immutable afterwards.
type InsuranceClaim struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	PatientID      uint        `gorm:"not null;index" json:"patientId"`
	AppointmentID  *uint       `gorm:"index" json:"appointmentId,omitempty"`
	LabTestID      *uint       `gorm:"index" json:"labTestId,omitempty"`
	ClaimAmount    float64     `gorm:"type:decimal(10,2);not null" json:"claimAmount"`
	ApprovedAmount *float64    `gorm:"type:decimal(10,2)" json:"approvedAmount,omitempty"`
	Status         ClaimStatus `gorm:"size:20;default:'submitted'" json:"status"`
	ClaimNumber    string      `gorm:"size:50;uniqueIndex;not null" json:"claimNumber"`
	SubmittedDate  time.Time   `json:"submittedDate"`
	ProcessedDate  *time.Time  `json:"processedDate,omitempty"`
	Notes          string      `gorm:"type:text" json:"notes,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for InsuranceClaim model
func (InsuranceClaim) TableName() string {
	return "insurance_claims"
}

// Valid reports whether s is a member of the closed status set.
func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimSubmitted, ClaimProcessing, ClaimApproved, ClaimRejected:
		return true
	}
	return false
}

// CanTransitionTo enforces the adjudication lifecycle:
// submitted -> processing -> approved|rejected.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	switch s {
	case ClaimSubmitted:
		return next == ClaimProcessing || next == ClaimApproved || next == ClaimRejected
	case ClaimProcessing:
		return next == ClaimApproved || next == ClaimRejected
	}
	return false
}
