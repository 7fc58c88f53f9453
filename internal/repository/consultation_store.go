package repository

import "easymed-backend/internal/models"

// GetAiConsultation retrieves an AI consultation by id
func (s *GormStore) GetAiConsultation(id uint) (*models.AiConsultation, error) {
	var consultation models.AiConsultation
	if err := s.db.First(&consultation, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &consultation, nil
}

// CreateAiConsultation creates a new AI consultation record
func (s *GormStore) CreateAiConsultation(consultation *models.AiConsultation) error {
	return s.db.Create(consultation).Error
}

// UpdateAiConsultation saves an updated AI consultation
func (s *GormStore) UpdateAiConsultation(consultation *models.AiConsultation) error {
	return s.db.Save(consultation).Error
}

// ListAiConsultationsByPatient retrieves a patient's consultations, newest first
func (s *GormStore) ListAiConsultationsByPatient(patientID uint) ([]models.AiConsultation, error) {
	consultations := []models.AiConsultation{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&consultations).Error
	return consultations, err
}
