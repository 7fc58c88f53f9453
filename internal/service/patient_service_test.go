package service

import (
	"testing"

	"easymed-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePatientForcesUnverified(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	user := &models.User{
		Username: "new.patient", Email: "new.patient@example.in", PasswordHash: "x",
		Role: models.RolePatient, FirstName: "New", LastName: "Patient", IsActive: true,
	}
	require.NoError(t, fx.store.CreateUser(user))

	aadhaar := "999988887777"
	patient, err := svc.CreatePatient(&models.Patient{
		UserID:          user.ID,
		AadhaarNumber:   &aadhaar,
		AadhaarVerified: true, // request tries to smuggle the flag in
	})
	require.NoError(t, err)
	assert.False(t, patient.AadhaarVerified)
}

func TestCreatePatientRejectsMalformedAadhaar(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	user := &models.User{
		Username: "short.aadhaar", Email: "short@example.in", PasswordHash: "x",
		Role: models.RolePatient, FirstName: "S", LastName: "A", IsActive: true,
	}
	require.NoError(t, fx.store.CreateUser(user))

	bad := "12345678901"
	_, err := svc.CreatePatient(&models.Patient{UserID: user.ID, AadhaarNumber: &bad})
	assert.True(t, IsValidation(err))
}

func TestVerifyAadhaarHappyPath(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	patient, err := svc.VerifyAadhaar(fx.patient.ID, "123412341234")
	require.NoError(t, err)
	assert.True(t, patient.AadhaarVerified)
	require.NotNil(t, patient.AadhaarNumber)
	assert.Equal(t, "123412341234", *patient.AadhaarNumber)
}

func TestVerifyAadhaarRejectsElevenDigits(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	_, err := svc.VerifyAadhaar(fx.patient.ID, "12341234123")
	assert.True(t, IsValidation(err))

	// The record stays untouched.
	stored, getErr := fx.store.GetPatient(fx.patient.ID)
	require.NoError(t, getErr)
	assert.False(t, stored.AadhaarVerified)
	assert.Nil(t, stored.AadhaarNumber)
}

func TestVerifyAadhaarRejectsNonDigits(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	_, err := svc.VerifyAadhaar(fx.patient.ID, "12341234123a")
	assert.True(t, IsValidation(err))
}

func TestVerifyAadhaarIsIdempotent(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	first, err := svc.VerifyAadhaar(fx.patient.ID, "123412341234")
	require.NoError(t, err)
	second, err := svc.VerifyAadhaar(fx.patient.ID, "123412341234")
	require.NoError(t, err)

	assert.True(t, first.AadhaarVerified)
	assert.True(t, second.AadhaarVerified)
	assert.Equal(t, *first.AadhaarNumber, *second.AadhaarNumber)
}

func TestCreatePatientRejectsDuplicateAadhaar(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	_, err := svc.VerifyAadhaar(fx.patient.ID, "555566667777")
	require.NoError(t, err)

	user := &models.User{
		Username: "second.patient", Email: "second@example.in", PasswordHash: "x",
		Role: models.RolePatient, FirstName: "Second", LastName: "Patient", IsActive: true,
	}
	require.NoError(t, fx.store.CreateUser(user))

	taken := "555566667777"
	_, err = svc.CreatePatient(&models.Patient{UserID: user.ID, AadhaarNumber: &taken})
	assert.True(t, IsValidation(err))
}

func TestVerifyAadhaarRejectsNumberHeldByAnotherPatient(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	_, err := svc.VerifyAadhaar(fx.patient.ID, "555566667777")
	require.NoError(t, err)

	user := &models.User{
		Username: "second.patient", Email: "second@example.in", PasswordHash: "x",
		Role: models.RolePatient, FirstName: "Second", LastName: "Patient", IsActive: true,
	}
	require.NoError(t, fx.store.CreateUser(user))
	second, err := svc.CreatePatient(&models.Patient{UserID: user.ID})
	require.NoError(t, err)

	_, err = svc.VerifyAadhaar(second.ID, "555566667777")
	assert.True(t, IsValidation(err))

	stored, getErr := fx.store.GetPatient(second.ID)
	require.NoError(t, getErr)
	assert.False(t, stored.AadhaarVerified)
	assert.Nil(t, stored.AadhaarNumber)
}

func TestVerifyAadhaarRejectsMismatchedNumber(t *testing.T) {
	fx := newFixture(t)
	svc := NewPatientService(fx.store)

	_, err := svc.VerifyAadhaar(fx.patient.ID, "123412341234")
	require.NoError(t, err)

	_, err = svc.VerifyAadhaar(fx.patient.ID, "432143214321")
	assert.True(t, IsValidation(err))
}
