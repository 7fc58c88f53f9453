package repository

import "easymed-backend/internal/models"

// GetInsuranceClaim retrieves an insurance claim by id
func (s *GormStore) GetInsuranceClaim(id uint) (*models.InsuranceClaim, error) {
	var claim models.InsuranceClaim
	if err := s.db.First(&claim, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &claim, nil
}

// CreateInsuranceClaim creates a new insurance claim
func (s *GormStore) CreateInsuranceClaim(claim *models.InsuranceClaim) error {
	return s.db.Create(claim).Error
}

// UpdateInsuranceClaim saves an updated insurance claim
func (s *GormStore) UpdateInsuranceClaim(claim *models.InsuranceClaim) error {
	return s.db.Save(claim).Error
}

// ListInsuranceClaimsByPatient retrieves a patient's claims, newest first
func (s *GormStore) ListInsuranceClaimsByPatient(patientID uint) ([]models.InsuranceClaim, error) {
	claims := []models.InsuranceClaim{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("submitted_date DESC").
		Find(&claims).Error
	return claims, err
}
