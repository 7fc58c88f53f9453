package service

import (
	"encoding/json"
	"fmt"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"
)

type PrescriptionService struct {
	store repository.Store
}

func NewPrescriptionService(store repository.Store) *PrescriptionService {
	return &PrescriptionService{store: store}
}

// CreatePrescription issues a prescription with a non-empty structured
// medication list.
func (s *PrescriptionService) CreatePrescription(prescription *models.Prescription, medications []models.Medication) (*models.Prescription, error) {
	if len(medications) == 0 {
		return nil, validationErrorf("at least one medication is required")
	}
	for _, medication := range medications {
		if medication.Name == "" || medication.Dosage == "" || medication.Frequency == "" || medication.Duration == "" {
			return nil, validationErrorf("each medication needs a name, dosage, frequency, and duration")
		}
	}
	if _, err := s.store.GetPatient(prescription.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetDoctor(prescription.DoctorID); err != nil {
		return nil, err
	}
	if prescription.AppointmentID != nil {
		if _, err := s.store.GetAppointment(*prescription.AppointmentID); err != nil {
			return nil, err
		}
	}

	encoded, err := json.Marshal(medications)
	if err != nil {
		return nil, fmt.Errorf("failed to encode medications: %w", err)
	}
	prescription.Medications = encoded
	prescription.Status = models.PrescriptionActive

	if err := s.store.CreatePrescription(prescription); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}

	_ = s.store.CreateAuditLog(nil, "prescription_created", fmt.Sprintf("Prescription %d issued for patient %d", prescription.ID, prescription.PatientID))

	return prescription, nil
}

func (s *PrescriptionService) GetPrescription(id uint) (*models.Prescription, error) {
	return s.store.GetPrescription(id)
}

func (s *PrescriptionService) ListByPatient(patientID uint) ([]models.Prescription, error) {
	return s.store.ListPrescriptionsByPatient(patientID)
}

func (s *PrescriptionService) ListByDoctor(doctorID uint) ([]models.Prescription, error) {
	return s.store.ListPrescriptionsByDoctor(doctorID)
}

// UpdateStatus moves a prescription to completed or cancelled. Active
// is the only state a prescription can leave.
func (s *PrescriptionService) UpdateStatus(id uint, status models.PrescriptionStatus) (*models.Prescription, error) {
	if !status.Valid() {
		return nil, validationErrorf(fmt.Sprintf("invalid prescription status %q", status))
	}

	prescription, err := s.store.GetPrescription(id)
	if err != nil {
		return nil, err
	}

	if prescription.Status != models.PrescriptionActive && status != prescription.Status {
		return nil, validationErrorf(fmt.Sprintf("cannot transition prescription from %s to %s", prescription.Status, status))
	}

	prescription.Status = status
	if err := s.store.UpdatePrescription(prescription); err != nil {
		return nil, fmt.Errorf("failed to update prescription: %w", err)
	}
	return prescription, nil
}
