package models

import "time"

// AppointmentStatus is the closed status set for appointments.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentInProgress AppointmentStatus = "in-progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

// Appointment types.
const (
	AppointmentInPerson     = "in-person"
	AppointmentTelemedicine = "telemedicine"
)

// Appointment duration bounds, in minutes.
const (
	MinAppointmentDuration     = 15
	DefaultAppointmentDuration = 30
)

// Appointment links one patient and one doctor at a scheduled time.
type Appointment struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	PatientID       uint              `gorm:"not null;index" json:"patientId"`
	DoctorID        uint              `gorm:"not null;index" json:"doctorId"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointmentDate"`
	Duration        int               `gorm:"default:30" json:"duration"`
	Status          AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	Type            string            `gorm:"size:20;default:'in-person'" json:"type"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	VideoCallLink   string            `gorm:"size:255" json:"videoCallLink,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// Valid reports whether s is a member of the closed status set.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentInProgress, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the appointment lifecycle:
// scheduled -> in-progress -> completed, or scheduled -> cancelled.
// Completed and cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentScheduled:
		return next == AppointmentInProgress || next == AppointmentCancelled
	case AppointmentInProgress:
		return next == AppointmentCompleted
	}
	return false
}
