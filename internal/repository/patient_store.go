package repository

import "easymed-backend/internal/models"

// GetPatient retrieves a patient profile by id
func (s *GormStore) GetPatient(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.First(&patient, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &patient, nil
}

// GetPatientByUserID retrieves the patient profile attached to a user
func (s *GormStore) GetPatientByUserID(userID uint) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.Where("user_id = ?", userID).First(&patient).Error; err != nil {
		return nil, notFound(err)
	}
	return &patient, nil
}

// GetPatientByAadhaar retrieves a patient by Aadhaar number
func (s *GormStore) GetPatientByAadhaar(aadhaarNumber string) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.Where("aadhaar_number = ?", aadhaarNumber).First(&patient).Error; err != nil {
		return nil, notFound(err)
	}
	return &patient, nil
}

// CreatePatient creates a new patient profile
func (s *GormStore) CreatePatient(patient *models.Patient) error {
	return s.db.Create(patient).Error
}

// UpdatePatient saves an updated patient profile
func (s *GormStore) UpdatePatient(patient *models.Patient) error {
	return s.db.Save(patient).Error
}

// ListPatients retrieves all patient profiles
func (s *GormStore) ListPatients() ([]models.Patient, error) {
	patients := []models.Patient{}
	err := s.db.Order("id ASC").Find(&patients).Error
	return patients, err
}
