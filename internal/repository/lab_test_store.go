package repository

import "easymed-backend/internal/models"

// GetLabTest retrieves a lab test by id
func (s *GormStore) GetLabTest(id uint) (*models.LabTest, error) {
	var labTest models.LabTest
	if err := s.db.First(&labTest, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &labTest, nil
}

// CreateLabTest creates a new lab test order
func (s *GormStore) CreateLabTest(labTest *models.LabTest) error {
	return s.db.Create(labTest).Error
}

// UpdateLabTest saves an updated lab test
func (s *GormStore) UpdateLabTest(labTest *models.LabTest) error {
	return s.db.Save(labTest).Error
}

// ListLabTestsByPatient retrieves a patient's lab tests, newest first
func (s *GormStore) ListLabTestsByPatient(patientID uint) ([]models.LabTest, error) {
	labTests := []models.LabTest{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&labTests).Error
	return labTests, err
}

// ListLabTestsByDoctor retrieves a doctor's lab tests, newest first
func (s *GormStore) ListLabTestsByDoctor(doctorID uint) ([]models.LabTest, error) {
	labTests := []models.LabTest{}
	err := s.db.Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&labTests).Error
	return labTests, err
}

// ListPendingLabTests retrieves a doctor's lab tests in any
// non-terminal status, newest first
func (s *GormStore) ListPendingLabTests(doctorID uint) ([]models.LabTest, error) {
	labTests := []models.LabTest{}
	err := s.db.Where("doctor_id = ? AND status IN ?", doctorID, models.PendingLabStatuses()).
		Order("created_at DESC").
		Find(&labTests).Error
	return labTests, err
}
