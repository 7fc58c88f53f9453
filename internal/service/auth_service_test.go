package service

import (
	"testing"

	"easymed-backend/internal/repository"
	"easymed-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerInput() RegisterInput {
	return RegisterInput{
		Username:  "asha.worker",
		Email:     "asha.worker@example.in",
		Password:  "s3cret-pass",
		Role:      "patient",
		FirstName: "Asha",
		LastName:  "Worker",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewAuthService(store)

	response, err := svc.Register(registerInput())
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "patient", response.User.Role)
	assert.NotEqual(t, "s3cret-pass", response.User.PasswordHash)

	claims, err := utils.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, response.User.ID, claims.UserID)
	assert.Equal(t, "patient", claims.Role)
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryStore())

	input := registerInput()
	input.Role = "receptionist"
	_, err := svc.Register(input)
	assert.True(t, IsValidation(err))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryStore())

	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	dup := registerInput()
	dup.Username = "different.username"
	_, err = svc.Register(dup)
	assert.True(t, IsValidation(err))
}

func TestLoginHappyPath(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryStore())

	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	response, err := svc.Login("asha.worker@example.in", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := NewAuthService(repository.NewMemoryStore())

	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, wrongPassword := svc.Login("asha.worker@example.in", "wrong")
	_, unknownEmail := svc.Login("nobody@example.in", "s3cret-pass")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
