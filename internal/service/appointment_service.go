package service

import (
	"fmt"
	"time"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"

	"github.com/google/uuid"
)

type AppointmentService struct {
	store repository.Store
}

func NewAppointmentService(store repository.Store) *AppointmentService {
	return &AppointmentService{store: store}
}

// CreateAppointment books an appointment. Duration below 15 minutes is
// rejected; zero duration defaults to 30. Telemedicine appointments
// get a video call link minted at creation.
func (s *AppointmentService) CreateAppointment(appointment *models.Appointment) (*models.Appointment, error) {
	if _, err := s.store.GetPatient(appointment.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetDoctor(appointment.DoctorID); err != nil {
		return nil, err
	}

	if appointment.Duration == 0 {
		appointment.Duration = models.DefaultAppointmentDuration
	}
	if appointment.Duration < models.MinAppointmentDuration {
		return nil, validationErrorf(fmt.Sprintf("appointment duration must be at least %d minutes", models.MinAppointmentDuration))
	}
	if appointment.AppointmentDate.IsZero() {
		return nil, validationErrorf("appointment date is required")
	}

	if appointment.Type == "" {
		appointment.Type = models.AppointmentInPerson
	}
	if appointment.Type != models.AppointmentInPerson && appointment.Type != models.AppointmentTelemedicine {
		return nil, validationErrorf(fmt.Sprintf("invalid appointment type %q", appointment.Type))
	}

	appointment.Status = models.AppointmentScheduled
	if appointment.Type == models.AppointmentTelemedicine {
		appointment.VideoCallLink = fmt.Sprintf("https://meet.easymed.in/%s", uuid.NewString())
	}

	if err := s.store.CreateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	_ = s.store.CreateAuditLog(nil, "appointment_created", fmt.Sprintf("Appointment %d booked for patient %d with doctor %d", appointment.ID, appointment.PatientID, appointment.DoctorID))

	return appointment, nil
}

func (s *AppointmentService) GetAppointment(id uint) (*models.Appointment, error) {
	return s.store.GetAppointment(id)
}

func (s *AppointmentService) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	return s.store.ListAppointmentsByDoctor(doctorID)
}

func (s *AppointmentService) ListByPatient(patientID uint) ([]models.Appointment, error) {
	return s.store.ListAppointmentsByPatient(patientID)
}

func (s *AppointmentService) ListTodaysByDoctor(doctorID uint) ([]models.Appointment, error) {
	return s.store.ListTodaysAppointments(doctorID)
}

func (s *AppointmentService) ListUpcomingByDoctor(doctorID uint) ([]models.Appointment, error) {
	return s.store.ListUpcomingAppointments(doctorID)
}

// AppointmentUpdate carries the PATCH body. Nil fields are untouched.
type AppointmentUpdate struct {
	Status          *models.AppointmentStatus
	AppointmentDate *time.Time
	Duration        *int
	Notes           *string
}

// UpdateAppointment applies a partial update, enforcing the status
// lifecycle: scheduled -> in-progress -> completed, or scheduled ->
// cancelled. Any other transition is rejected.
func (s *AppointmentService) UpdateAppointment(id uint, update AppointmentUpdate) (*models.Appointment, error) {
	appointment, err := s.store.GetAppointment(id)
	if err != nil {
		return nil, err
	}

	if update.Status != nil && *update.Status != appointment.Status {
		if !update.Status.Valid() {
			return nil, validationErrorf(fmt.Sprintf("invalid appointment status %q", *update.Status))
		}
		if !appointment.Status.CanTransitionTo(*update.Status) {
			return nil, validationErrorf(fmt.Sprintf("cannot transition appointment from %s to %s", appointment.Status, *update.Status))
		}
		appointment.Status = *update.Status
	}
	if update.AppointmentDate != nil {
		appointment.AppointmentDate = *update.AppointmentDate
	}
	if update.Duration != nil {
		if *update.Duration < models.MinAppointmentDuration {
			return nil, validationErrorf(fmt.Sprintf("appointment duration must be at least %d minutes", models.MinAppointmentDuration))
		}
		appointment.Duration = *update.Duration
	}
	if update.Notes != nil {
		appointment.Notes = *update.Notes
	}

	if err := s.store.UpdateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appointment, nil
}
