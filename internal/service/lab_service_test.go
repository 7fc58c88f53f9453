package service

import (
	"testing"

	"easymed-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderLabTest(t *testing.T, fx *fixture, svc *LabService) *models.LabTest {
	t.Helper()
	labTest, err := svc.CreateLabTest(&models.LabTest{
		PatientID: fx.patient.ID,
		DoctorID:  fx.doctor.ID,
		TestName:  "Complete Blood Count",
		TestType:  "hematology",
	})
	require.NoError(t, err)
	return labTest
}

func TestCreateLabTestStartsOrdered(t *testing.T) {
	fx := newFixture(t)
	svc := NewLabService(fx.store)

	labTest := orderLabTest(t, fx, svc)
	assert.Equal(t, models.LabTestOrdered, labTest.Status)
	assert.Empty(t, labTest.Results)
}

func TestCreateLabTestRejectsPresetResults(t *testing.T) {
	fx := newFixture(t)
	svc := NewLabService(fx.store)

	_, err := svc.CreateLabTest(&models.LabTest{
		PatientID: fx.patient.ID,
		DoctorID:  fx.doctor.ID,
		TestName:  "CBC",
		TestType:  "hematology",
		Results:   []byte(`{"wbc": 7.2}`),
	})
	assert.True(t, IsValidation(err))
}

func TestLabTestResultsOnlyAtCompletion(t *testing.T) {
	fx := newFixture(t)
	svc := NewLabService(fx.store)
	labTest := orderLabTest(t, fx, svc)

	// Results may not be attached before completion.
	inProgress := models.LabTestInProgress
	_, err := svc.UpdateLabTest(labTest.ID, LabTestUpdate{
		Status:  &inProgress,
		Results: []byte(`{"wbc": 7.2}`),
	})
	assert.True(t, IsValidation(err))

	stored, err := fx.store.GetLabTest(labTest.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Results)

	// Advancing to completed in the same update allows results.
	completed := models.LabTestCompleted
	updated, err := svc.UpdateLabTest(labTest.ID, LabTestUpdate{
		Status:  &completed,
		Results: []byte(`{"wbc": 7.2}`),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LabTestCompleted, updated.Status)
	assert.NotEmpty(t, updated.Results)
}

func TestLabTestStatusCannotRegress(t *testing.T) {
	fx := newFixture(t)
	svc := NewLabService(fx.store)
	labTest := orderLabTest(t, fx, svc)

	inProgress := models.LabTestInProgress
	_, err := svc.UpdateLabTest(labTest.ID, LabTestUpdate{Status: &inProgress})
	require.NoError(t, err)

	ordered := models.LabTestOrdered
	_, err = svc.UpdateLabTest(labTest.ID, LabTestUpdate{Status: &ordered})
	assert.True(t, IsValidation(err))
}

func TestListPendingExcludesCompleted(t *testing.T) {
	fx := newFixture(t)
	svc := NewLabService(fx.store)

	pendingTest := orderLabTest(t, fx, svc)
	doneTest := orderLabTest(t, fx, svc)

	completed := models.LabTestCompleted
	_, err := svc.UpdateLabTest(doneTest.ID, LabTestUpdate{Status: &completed})
	require.NoError(t, err)

	pending, err := svc.ListPendingByDoctor(fx.doctor.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, pendingTest.ID, pending[0].ID)
}
