package service

import (
	"os"
	"testing"
	"time"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"
	"easymed-backend/pkg/utils"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitJWT("test-secret", time.Hour)
	os.Exit(m.Run())
}

// fixture is one seeded in-memory store with a doctor and a patient.
type fixture struct {
	store   *repository.MemoryStore
	doctor  *models.Doctor
	patient *models.Patient
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewMemoryStore()

	doctorUser := &models.User{
		Username: "dr.rao", Email: "dr.rao@easymed.in", PasswordHash: "x",
		Role: models.RoleDoctor, FirstName: "Anil", LastName: "Rao", IsActive: true,
	}
	require.NoError(t, store.CreateUser(doctorUser))

	doctor := &models.Doctor{
		UserID: doctorUser.ID, MedicalCouncilID: "MCI-1001",
		Specialization: "General Medicine", Qualifications: "MBBS",
	}
	require.NoError(t, store.CreateDoctor(doctor))

	patientUser := &models.User{
		Username: "sita.devi", Email: "sita.devi@example.in", PasswordHash: "x",
		Role: models.RolePatient, FirstName: "Sita", LastName: "Devi", IsActive: true,
	}
	require.NoError(t, store.CreateUser(patientUser))

	patient := &models.Patient{
		UserID:            patientUser.ID,
		Gender:            "female",
		InsuranceProvider: "Ayushman Bharat",
	}
	require.NoError(t, store.CreatePatient(patient))

	return &fixture{store: store, doctor: doctor, patient: patient}
}
