package repository

import "easymed-backend/internal/models"

// GetPrescription retrieves a prescription by id
func (s *GormStore) GetPrescription(id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := s.db.First(&prescription, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &prescription, nil
}

// CreatePrescription creates a new prescription
func (s *GormStore) CreatePrescription(prescription *models.Prescription) error {
	return s.db.Create(prescription).Error
}

// UpdatePrescription saves an updated prescription
func (s *GormStore) UpdatePrescription(prescription *models.Prescription) error {
	return s.db.Save(prescription).Error
}

// ListPrescriptionsByPatient retrieves a patient's prescriptions, newest first
func (s *GormStore) ListPrescriptionsByPatient(patientID uint) ([]models.Prescription, error) {
	prescriptions := []models.Prescription{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	return prescriptions, err
}

// ListPrescriptionsByDoctor retrieves a doctor's prescriptions, newest first
func (s *GormStore) ListPrescriptionsByDoctor(doctorID uint) ([]models.Prescription, error) {
	prescriptions := []models.Prescription{}
	err := s.db.Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	return prescriptions, err
}
