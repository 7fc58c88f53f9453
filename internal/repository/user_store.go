package repository

import "easymed-backend/internal/models"

// GetUser retrieves a user by id
func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// CreateUser creates a new user
func (s *GormStore) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// UpdateUser saves an updated user
func (s *GormStore) UpdateUser(user *models.User) error {
	return s.db.Save(user).Error
}
