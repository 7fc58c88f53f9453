package models

import (
	"time"

	"gorm.io/datatypes"
)

// LabTestStatus is the closed status set for lab tests. The lifecycle
// is strictly monotonic: ordered -> sample_collected -> in_progress ->
// completed, with no regression.
type LabTestStatus string

const (
	LabTestOrdered         LabTestStatus = "ordered"
	LabTestSampleCollected LabTestStatus = "sample_collected"
	LabTestInProgress      LabTestStatus = "in_progress"
	LabTestCompleted       LabTestStatus = "completed"
)

var labTestStatusRank = map[LabTestStatus]int{
	LabTestOrdered:         0,
	LabTestSampleCollected: 1,
	LabTestInProgress:      2,
	LabTestCompleted:       3,
}

// LabTest belongs to one patient and one doctor. Results stay null
// until the test reaches completed.
type LabTest struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	PatientID        uint           `gorm:"not null;index" json:"patientId"`
	DoctorID         uint           `gorm:"not null;index" json:"doctorId"`
	TestName         string         `gorm:"size:255;not null" json:"testName"`
	TestType         string         `gorm:"size:100;not null" json:"testType"`
	Status           LabTestStatus  `gorm:"size:30;default:'ordered'" json:"status"`
	LabProvider      string         `gorm:"size:255" json:"labProvider,omitempty"`
	ScheduledDate    *time.Time     `json:"scheduledDate,omitempty"`
	Results          datatypes.JSON `json:"results,omitempty"`
	NormalRanges     datatypes.JSON `json:"normalRanges,omitempty"`
	ReportURL        string         `gorm:"size:255" json:"reportUrl,omitempty"`
	Cost             float64        `gorm:"type:decimal(10,2)" json:"cost"`
	InsuranceCovered bool           `gorm:"default:false" json:"insuranceCovered"`
	CreatedAt        time.Time      `json:"createdAt"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for LabTest model
func (LabTest) TableName() string {
	return "lab_tests"
}

// Valid reports whether s is a member of the closed status set.
func (s LabTestStatus) Valid() bool {
	_, ok := labTestStatusRank[s]
	return ok
}

// Terminal reports whether the test has reached its final stage.
func (s LabTestStatus) Terminal() bool {
	return s == LabTestCompleted
}

// CanTransitionTo allows only forward movement through the lifecycle.
func (s LabTestStatus) CanTransitionTo(next LabTestStatus) bool {
	from, ok := labTestStatusRank[s]
	if !ok {
		return false
	}
	to, ok := labTestStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// PendingLabStatuses lists every non-terminal status, used by the
// pending-tests queries and the dashboard counts.
func PendingLabStatuses() []LabTestStatus {
	return []LabTestStatus{LabTestOrdered, LabTestSampleCollected, LabTestInProgress}
}
