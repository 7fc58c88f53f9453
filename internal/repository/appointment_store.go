package repository

import (
	"time"

	"easymed-backend/internal/models"
)

// GetAppointment retrieves an appointment by id
func (s *GormStore) GetAppointment(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &appointment, nil
}

// CreateAppointment creates a new appointment
func (s *GormStore) CreateAppointment(appointment *models.Appointment) error {
	return s.db.Create(appointment).Error
}

// UpdateAppointment saves an updated appointment
func (s *GormStore) UpdateAppointment(appointment *models.Appointment) error {
	return s.db.Save(appointment).Error
}

// ListAppointmentsByDoctor retrieves a doctor's appointments, newest first
func (s *GormStore) ListAppointmentsByDoctor(doctorID uint) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := s.db.Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// ListAppointmentsByPatient retrieves a patient's appointments, newest first
func (s *GormStore) ListAppointmentsByPatient(patientID uint) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := s.db.Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// ListTodaysAppointments retrieves a doctor's appointments scheduled
// within the current calendar day, server-local time, in visit order
func (s *GormStore) ListTodaysAppointments(doctorID uint) ([]models.Appointment, error) {
	start, end := dayBounds(time.Now())
	appointments := []models.Appointment{}
	err := s.db.Where("doctor_id = ? AND appointment_date >= ? AND appointment_date <= ?", doctorID, start, end).
		Order("appointment_date ASC").
		Find(&appointments).Error
	return appointments, err
}

// ListUpcomingAppointments retrieves a doctor's future appointments
// that are still scheduled
func (s *GormStore) ListUpcomingAppointments(doctorID uint) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := s.db.Where("doctor_id = ? AND appointment_date >= ? AND status = ?",
		doctorID, time.Now(), models.AppointmentScheduled).
		Order("appointment_date ASC").
		Find(&appointments).Error
	return appointments, err
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	return start, end
}
