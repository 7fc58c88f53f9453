package repository

import "easymed-backend/internal/models"

// GetMedicalRecord retrieves a medical record by id
func (s *GormStore) GetMedicalRecord(id uint) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := s.db.First(&record, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &record, nil
}

// CreateMedicalRecord creates a new medical record
func (s *GormStore) CreateMedicalRecord(record *models.MedicalRecord) error {
	return s.db.Create(record).Error
}

// UpdateMedicalRecord saves an updated medical record. Records are
// append-only history; nothing in this package deletes them.
func (s *GormStore) UpdateMedicalRecord(record *models.MedicalRecord) error {
	return s.db.Save(record).Error
}

// ListMedicalRecordsByPatient retrieves a patient's records, newest first
func (s *GormStore) ListMedicalRecordsByPatient(patientID uint) ([]models.MedicalRecord, error) {
	records := []models.MedicalRecord{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// ListMedicalRecordsByDoctor retrieves a doctor's records, newest first
func (s *GormStore) ListMedicalRecordsByDoctor(doctorID uint) ([]models.MedicalRecord, error) {
	records := []models.MedicalRecord{}
	err := s.db.Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
