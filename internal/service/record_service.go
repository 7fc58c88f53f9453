package service

import (
	"fmt"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"
)

type RecordService struct {
	store repository.Store
}

func NewRecordService(store repository.Store) *RecordService {
	return &RecordService{store: store}
}

// CreateRecord appends an entry to a patient's medical history.
func (s *RecordService) CreateRecord(record *models.MedicalRecord) (*models.MedicalRecord, error) {
	if !models.ValidRecordType(record.RecordType) {
		return nil, validationErrorf(fmt.Sprintf("invalid record type %q", record.RecordType))
	}
	if record.Title == "" {
		return nil, validationErrorf("record title is required")
	}
	if _, err := s.store.GetPatient(record.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetDoctor(record.DoctorID); err != nil {
		return nil, err
	}

	if err := s.store.CreateMedicalRecord(record); err != nil {
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}

	_ = s.store.CreateAuditLog(nil, "record_created", fmt.Sprintf("Medical record %d (%s) created for patient %d", record.ID, record.RecordType, record.PatientID))

	return record, nil
}

func (s *RecordService) GetRecord(id uint) (*models.MedicalRecord, error) {
	return s.store.GetMedicalRecord(id)
}

func (s *RecordService) ListByPatient(patientID uint) ([]models.MedicalRecord, error) {
	return s.store.ListMedicalRecordsByPatient(patientID)
}

func (s *RecordService) ListByDoctor(doctorID uint) ([]models.MedicalRecord, error) {
	return s.store.ListMedicalRecordsByDoctor(doctorID)
}

// AmendRecord appends supplementary detail to an existing record.
// History is append-only: the type, patient, and doctor never change,
// and records are never deleted.
func (s *RecordService) AmendRecord(id uint, diagnosis, treatment string) (*models.MedicalRecord, error) {
	record, err := s.store.GetMedicalRecord(id)
	if err != nil {
		return nil, err
	}

	if diagnosis != "" {
		record.Diagnosis = diagnosis
	}
	if treatment != "" {
		record.Treatment = treatment
	}

	if err := s.store.UpdateMedicalRecord(record); err != nil {
		return nil, fmt.Errorf("failed to update medical record: %w", err)
	}
	return record, nil
}
