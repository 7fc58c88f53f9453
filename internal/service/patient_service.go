package service

import (
	"fmt"
	"regexp"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"
)

// aadhaarPattern is the local format check: exactly 12 digits. No live
// registry integration exists.
var aadhaarPattern = regexp.MustCompile(`^\d{12}$`)

type PatientService struct {
	store repository.Store
}

func NewPatientService(store repository.Store) *PatientService {
	return &PatientService{store: store}
}

// CreatePatient attaches a patient profile to an existing user. The
// verification flag is forced false regardless of the request body;
// only VerifyAadhaar may set it.
func (s *PatientService) CreatePatient(patient *models.Patient) (*models.Patient, error) {
	if _, err := s.store.GetUser(patient.UserID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetPatientByUserID(patient.UserID); err == nil {
		return nil, validationErrorf("patient profile already exists for this user")
	}
	if patient.AadhaarNumber != nil {
		if !aadhaarPattern.MatchString(*patient.AadhaarNumber) {
			return nil, validationErrorf("aadhaar number must be exactly 12 digits")
		}
		if _, err := s.store.GetPatientByAadhaar(*patient.AadhaarNumber); err == nil {
			return nil, validationErrorf("aadhaar number is already registered to another patient")
		}
	}

	patient.AadhaarVerified = false
	if err := s.store.CreatePatient(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	_ = s.store.CreateAuditLog(&patient.UserID, "patient_created", fmt.Sprintf("Patient profile %d created", patient.ID))

	return patient, nil
}

func (s *PatientService) GetPatient(id uint) (*models.Patient, error) {
	return s.store.GetPatient(id)
}

func (s *PatientService) ListPatients() ([]models.Patient, error) {
	return s.store.ListPatients()
}

// UpdatePatient updates mutable profile fields. The Aadhaar number and
// verification flag are not touched here.
func (s *PatientService) UpdatePatient(id uint, update *models.Patient) (*models.Patient, error) {
	patient, err := s.store.GetPatient(id)
	if err != nil {
		return nil, err
	}

	if update.Gender != "" {
		patient.Gender = update.Gender
	}
	if update.BloodGroup != "" {
		patient.BloodGroup = update.BloodGroup
	}
	if update.EmergencyContact != "" {
		patient.EmergencyContact = update.EmergencyContact
	}
	if update.Address != "" {
		patient.Address = update.Address
	}
	if update.InsuranceProvider != "" {
		patient.InsuranceProvider = update.InsuranceProvider
	}
	if update.InsuranceNumber != "" {
		patient.InsuranceNumber = update.InsuranceNumber
	}
	if update.Allergies != "" {
		patient.Allergies = update.Allergies
	}
	if update.DateOfBirth != nil {
		patient.DateOfBirth = update.DateOfBirth
	}
	if len(update.MedicalHistory) > 0 {
		patient.MedicalHistory = update.MedicalHistory
	}

	if err := s.store.UpdatePatient(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// VerifyAadhaar runs the 12-digit format check against the patient's
// record. A malformed number is a validation failure that leaves the
// patient unchanged; a well-formed number marks the patient verified.
// Verifying an already-verified patient is a no-op beyond the flag
// already being true.
func (s *PatientService) VerifyAadhaar(patientID uint, aadhaarNumber string) (*models.Patient, error) {
	if !aadhaarPattern.MatchString(aadhaarNumber) {
		return nil, validationErrorf("aadhaar number must be exactly 12 digits")
	}

	patient, err := s.store.GetPatient(patientID)
	if err != nil {
		return nil, err
	}

	if patient.AadhaarNumber != nil && *patient.AadhaarNumber != aadhaarNumber {
		return nil, validationErrorf("aadhaar number does not match patient record")
	}

	// Aadhaar numbers identify exactly one person.
	if existing, err := s.store.GetPatientByAadhaar(aadhaarNumber); err == nil && existing.ID != patient.ID {
		return nil, validationErrorf("aadhaar number is already registered to another patient")
	}

	if patient.AadhaarVerified && patient.AadhaarNumber != nil {
		return patient, nil
	}

	patient.AadhaarNumber = &aadhaarNumber
	patient.AadhaarVerified = true
	if err := s.store.UpdatePatient(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	_ = s.store.CreateAuditLog(&patient.UserID, "aadhaar_verified", fmt.Sprintf("Aadhaar verified for patient %d", patient.ID))

	return patient, nil
}
