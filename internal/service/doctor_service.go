package service

import (
	"fmt"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"
)

type DoctorService struct {
	store repository.Store
}

func NewDoctorService(store repository.Store) *DoctorService {
	return &DoctorService{store: store}
}

// CreateDoctor attaches a doctor profile to an existing user with role
// doctor. One profile per user; the council id must be unused.
func (s *DoctorService) CreateDoctor(doctor *models.Doctor) (*models.Doctor, error) {
	user, err := s.store.GetUser(doctor.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleDoctor {
		return nil, validationErrorf("user does not have the doctor role")
	}
	if _, err := s.store.GetDoctorByUserID(doctor.UserID); err == nil {
		return nil, validationErrorf("doctor profile already exists for this user")
	}
	if _, err := s.store.GetDoctorByCouncilID(doctor.MedicalCouncilID); err == nil {
		return nil, validationErrorf("medical council id already registered")
	}

	if err := s.store.CreateDoctor(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	_ = s.store.CreateAuditLog(&doctor.UserID, "doctor_created", fmt.Sprintf("Doctor profile %d created", doctor.ID))

	return doctor, nil
}

func (s *DoctorService) GetDoctor(id uint) (*models.Doctor, error) {
	return s.store.GetDoctor(id)
}

func (s *DoctorService) ListDoctors() ([]models.Doctor, error) {
	return s.store.ListDoctors()
}

// UpdateAvailability replaces a doctor's published slot list.
func (s *DoctorService) UpdateAvailability(id uint, slots []byte) (*models.Doctor, error) {
	doctor, err := s.store.GetDoctor(id)
	if err != nil {
		return nil, err
	}

	doctor.AvailableSlots = slots
	if err := s.store.UpdateDoctor(doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return doctor, nil
}
