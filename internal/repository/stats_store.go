package repository

import (
	"time"

	"easymed-backend/internal/models"
)

// DashboardStats runs the doctor dashboard counting queries: today's
// appointments (server-local day), total appointments as the "active
// patients" proxy, non-terminal lab tests, and AI consultations
// created within the trailing 7 days.
func (s *GormStore) DashboardStats(doctorID uint) (*DashboardStats, error) {
	stats := &DashboardStats{}
	start, end := dayBounds(time.Now())

	err := s.db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND appointment_date >= ? AND appointment_date <= ?", doctorID, start, end).
		Count(&stats.TodayAppointments).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Count(&stats.ActivePatients).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.LabTest{}).
		Where("doctor_id = ? AND status IN ?", doctorID, models.PendingLabStatuses()).
		Count(&stats.PendingLabs).Error
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().Add(-7 * 24 * time.Hour)
	err = s.db.Model(&models.AiConsultation{}).
		Where("created_at >= ?", weekAgo).
		Count(&stats.AiConsultations).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
