package repository

import "easymed-backend/internal/models"

// CreateAuditLog creates a new audit log entry
func (s *GormStore) CreateAuditLog(userID *uint, action string, details string) error {
	entry := &models.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	return s.db.Create(entry).Error
}
