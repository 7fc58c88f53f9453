package repository

import "easymed-backend/internal/models"

// GetDoctor retrieves a doctor profile by id
func (s *GormStore) GetDoctor(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &doctor, nil
}

// GetDoctorByUserID retrieves the doctor profile attached to a user
func (s *GormStore) GetDoctorByUserID(userID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, notFound(err)
	}
	return &doctor, nil
}

// GetDoctorByCouncilID retrieves a doctor by medical council license id
func (s *GormStore) GetDoctorByCouncilID(councilID string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.Where("medical_council_id = ?", councilID).First(&doctor).Error; err != nil {
		return nil, notFound(err)
	}
	return &doctor, nil
}

// CreateDoctor creates a new doctor profile
func (s *GormStore) CreateDoctor(doctor *models.Doctor) error {
	return s.db.Create(doctor).Error
}

// UpdateDoctor saves an updated doctor profile
func (s *GormStore) UpdateDoctor(doctor *models.Doctor) error {
	return s.db.Save(doctor).Error
}

// ListDoctors retrieves all doctor profiles
func (s *GormStore) ListDoctors() ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := s.db.Order("id ASC").Find(&doctors).Error
	return doctors, err
}
