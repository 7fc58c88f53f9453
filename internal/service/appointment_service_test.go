package service

import (
	"testing"
	"time"

	"easymed-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppointment(fx *fixture) *models.Appointment {
	return &models.Appointment{
		PatientID:       fx.patient.ID,
		DoctorID:        fx.doctor.ID,
		AppointmentDate: time.Now().Add(48 * time.Hour),
	}
}

func TestCreateAppointmentDefaults(t *testing.T) {
	fx := newFixture(t)
	svc := NewAppointmentService(fx.store)

	appointment, err := svc.CreateAppointment(validAppointment(fx))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppointmentDuration, appointment.Duration)
	assert.Equal(t, models.AppointmentScheduled, appointment.Status)
	assert.Equal(t, models.AppointmentInPerson, appointment.Type)
	assert.Empty(t, appointment.VideoCallLink)
}

func TestCreateAppointmentRejectsShortDuration(t *testing.T) {
	fx := newFixture(t)
	svc := NewAppointmentService(fx.store)

	appointment := validAppointment(fx)
	appointment.Duration = 10
	_, err := svc.CreateAppointment(appointment)
	assert.True(t, IsValidation(err))
}

func TestCreateTelemedicineAppointmentMintsVideoLink(t *testing.T) {
	fx := newFixture(t)
	svc := NewAppointmentService(fx.store)

	appointment := validAppointment(fx)
	appointment.Type = models.AppointmentTelemedicine
	created, err := svc.CreateAppointment(appointment)
	require.NoError(t, err)
	assert.Contains(t, created.VideoCallLink, "https://meet.easymed.in/")
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	fx := newFixture(t)
	svc := NewAppointmentService(fx.store)

	appointment := validAppointment(fx)
	appointment.DoctorID = 9999
	_, err := svc.CreateAppointment(appointment)
	assert.Error(t, err)
}

func TestUpdateAppointmentLifecycle(t *testing.T) {
	fx := newFixture(t)
	svc := NewAppointmentService(fx.store)

	appointment, err := svc.CreateAppointment(validAppointment(fx))
	require.NoError(t, err)

	inProgress := models.AppointmentInProgress
	updated, err := svc.UpdateAppointment(appointment.ID, AppointmentUpdate{Status: &inProgress})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentInProgress, updated.Status)

	completed := models.AppointmentCompleted
	updated, err = svc.UpdateAppointment(appointment.ID, AppointmentUpdate{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, updated.Status)
}

func TestUpdateAppointmentRejectsIllegalTransition(t *testing.T) {
	fx := newFixture(t)
	svc := NewAppointmentService(fx.store)

	appointment, err := svc.CreateAppointment(validAppointment(fx))
	require.NoError(t, err)

	// scheduled cannot jump straight to completed
	completed := models.AppointmentCompleted
	_, err = svc.UpdateAppointment(appointment.ID, AppointmentUpdate{Status: &completed})
	assert.True(t, IsValidation(err))

	// and a cancelled appointment is terminal
	cancelled := models.AppointmentCancelled
	_, err = svc.UpdateAppointment(appointment.ID, AppointmentUpdate{Status: &cancelled})
	require.NoError(t, err)
	inProgress := models.AppointmentInProgress
	_, err = svc.UpdateAppointment(appointment.ID, AppointmentUpdate{Status: &inProgress})
	assert.True(t, IsValidation(err))
}

func TestListTodaysAppointments(t *testing.T) {
	fx := newFixture(t)
	svc := NewAppointmentService(fx.store)

	now := time.Now()
	noonToday := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())

	today := validAppointment(fx)
	today.AppointmentDate = noonToday
	_, err := svc.CreateAppointment(today)
	require.NoError(t, err)

	tomorrow := validAppointment(fx)
	tomorrow.AppointmentDate = noonToday.Add(24 * time.Hour)
	_, err = svc.CreateAppointment(tomorrow)
	require.NoError(t, err)

	todays, err := svc.ListTodaysByDoctor(fx.doctor.ID)
	require.NoError(t, err)
	assert.Len(t, todays, 1)
}
