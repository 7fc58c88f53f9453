package models

import (
	"time"

	"gorm.io/datatypes"
)

// ConsultationStatus is the closed status set for AI consultations.
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationReviewed  ConsultationStatus = "reviewed"
	ConsultationDismissed ConsultationStatus = "dismissed"
)

// AiConsultation stores one symptom-triage request and its (possibly
// fallback) analysis. ConfidenceScore is clamped to [0,1] before it is
// ever written.
type AiConsultation struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	PatientID          *uint              `gorm:"index" json:"patientId,omitempty"`
	Symptoms           datatypes.JSON     `gorm:"not null" json:"symptoms"`
	RiskFactors        datatypes.JSON     `json:"riskFactors,omitempty"`
	AiAnalysis         datatypes.JSON     `json:"aiAnalysis,omitempty"`
	ConfidenceScore    float64            `gorm:"type:decimal(3,2)" json:"confidenceScore"`
	RecommendedActions datatypes.JSON     `json:"recommendedActions,omitempty"`
	DoctorReview       string             `gorm:"type:text" json:"doctorReview,omitempty"`
	Status             ConsultationStatus `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for AiConsultation model
func (AiConsultation) TableName() string {
	return "ai_consultations"
}

// Valid reports whether s is a member of the closed status set.
func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationPending, ConsultationReviewed, ConsultationDismissed:
		return true
	}
	return false
}
