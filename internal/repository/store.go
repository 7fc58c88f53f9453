package repository

import (
	"errors"

	"easymed-backend/internal/models"
)

// ErrNotFound is returned by every Get method when the id (or unique
// key) does not resolve to a record. Callers must treat it as distinct
// from validation and persistence failures.
var ErrNotFound = errors.New("record not found")

// DashboardStats aggregates the doctor dashboard counters.
// ActivePatients deliberately counts appointments, not distinct
// patients, matching the metric the dashboard has always shown.
type DashboardStats struct {
	TodayAppointments int64 `json:"todayAppointments"`
	ActivePatients    int64 `json:"activePatients"`
	PendingLabs       int64 `json:"pendingLabs"`
	AiConsultations   int64 `json:"aiConsultations"`
}

// Store is the clinical data access port. Two implementations exist:
// the gorm-backed store for the authenticated API and the in-memory
// fixture store behind the demo tree (also the persistence test
// double). Lists are ordered newest-first on their temporal column and
// return empty slices when nothing matches.
type Store interface {
	// User management
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error

	// Doctor management
	GetDoctor(id uint) (*models.Doctor, error)
	GetDoctorByUserID(userID uint) (*models.Doctor, error)
	GetDoctorByCouncilID(councilID string) (*models.Doctor, error)
	CreateDoctor(doctor *models.Doctor) error
	UpdateDoctor(doctor *models.Doctor) error
	ListDoctors() ([]models.Doctor, error)

	// Patient management
	GetPatient(id uint) (*models.Patient, error)
	GetPatientByUserID(userID uint) (*models.Patient, error)
	GetPatientByAadhaar(aadhaarNumber string) (*models.Patient, error)
	CreatePatient(patient *models.Patient) error
	UpdatePatient(patient *models.Patient) error
	ListPatients() ([]models.Patient, error)

	// Appointment management
	GetAppointment(id uint) (*models.Appointment, error)
	CreateAppointment(appointment *models.Appointment) error
	UpdateAppointment(appointment *models.Appointment) error
	ListAppointmentsByDoctor(doctorID uint) ([]models.Appointment, error)
	ListAppointmentsByPatient(patientID uint) ([]models.Appointment, error)
	ListTodaysAppointments(doctorID uint) ([]models.Appointment, error)
	ListUpcomingAppointments(doctorID uint) ([]models.Appointment, error)

	// Medical record management
	GetMedicalRecord(id uint) (*models.MedicalRecord, error)
	CreateMedicalRecord(record *models.MedicalRecord) error
	UpdateMedicalRecord(record *models.MedicalRecord) error
	ListMedicalRecordsByPatient(patientID uint) ([]models.MedicalRecord, error)
	ListMedicalRecordsByDoctor(doctorID uint) ([]models.MedicalRecord, error)

	// Prescription management
	GetPrescription(id uint) (*models.Prescription, error)
	CreatePrescription(prescription *models.Prescription) error
	UpdatePrescription(prescription *models.Prescription) error
	ListPrescriptionsByPatient(patientID uint) ([]models.Prescription, error)
	ListPrescriptionsByDoctor(doctorID uint) ([]models.Prescription, error)

	// Lab test management
	GetLabTest(id uint) (*models.LabTest, error)
	CreateLabTest(labTest *models.LabTest) error
	UpdateLabTest(labTest *models.LabTest) error
	ListLabTestsByPatient(patientID uint) ([]models.LabTest, error)
	ListLabTestsByDoctor(doctorID uint) ([]models.LabTest, error)
	ListPendingLabTests(doctorID uint) ([]models.LabTest, error)

	// AI consultation management
	GetAiConsultation(id uint) (*models.AiConsultation, error)
	CreateAiConsultation(consultation *models.AiConsultation) error
	UpdateAiConsultation(consultation *models.AiConsultation) error
	ListAiConsultationsByPatient(patientID uint) ([]models.AiConsultation, error)

	// Insurance claim management
	GetInsuranceClaim(id uint) (*models.InsuranceClaim, error)
	CreateInsuranceClaim(claim *models.InsuranceClaim) error
	UpdateInsuranceClaim(claim *models.InsuranceClaim) error
	ListInsuranceClaimsByPatient(patientID uint) ([]models.InsuranceClaim, error)

	// Audit logging
	CreateAuditLog(userID *uint, action string, details string) error

	// Dashboard statistics
	DashboardStats(doctorID uint) (*DashboardStats, error)
}
