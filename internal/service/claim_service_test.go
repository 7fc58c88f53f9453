package service

import (
	"strings"
	"testing"

	"easymed-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitClaimMintsClaimNumber(t *testing.T) {
	fx := newFixture(t)
	svc := NewClaimService(fx.store)

	claim, err := svc.SubmitClaim(&models.InsuranceClaim{
		PatientID:   fx.patient.ID,
		ClaimAmount: 2500,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(claim.ClaimNumber, "CLM"))
	assert.Len(t, claim.ClaimNumber, 15)
	assert.Equal(t, models.ClaimSubmitted, claim.Status)
	assert.False(t, claim.SubmittedDate.IsZero())
	assert.Nil(t, claim.ProcessedDate)
}

func TestSubmitClaimNumbersAreUnique(t *testing.T) {
	fx := newFixture(t)
	svc := NewClaimService(fx.store)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		claim, err := svc.SubmitClaim(&models.InsuranceClaim{
			PatientID:   fx.patient.ID,
			ClaimAmount: 100,
		})
		require.NoError(t, err)
		assert.False(t, seen[claim.ClaimNumber], "duplicate claim number %s", claim.ClaimNumber)
		seen[claim.ClaimNumber] = true
	}
}

func TestSubmitClaimRequiresInsurance(t *testing.T) {
	fx := newFixture(t)
	svc := NewClaimService(fx.store)

	uninsured := &models.User{
		Username: "no.cover", Email: "no.cover@example.in", PasswordHash: "x",
		Role: models.RolePatient, FirstName: "No", LastName: "Cover", IsActive: true,
	}
	require.NoError(t, fx.store.CreateUser(uninsured))
	patient := &models.Patient{UserID: uninsured.ID}
	require.NoError(t, fx.store.CreatePatient(patient))

	_, err := svc.SubmitClaim(&models.InsuranceClaim{PatientID: patient.ID, ClaimAmount: 500})
	assert.True(t, IsValidation(err))
}

func TestAdjudicateApproval(t *testing.T) {
	fx := newFixture(t)
	svc := NewClaimService(fx.store)

	claim, err := svc.SubmitClaim(&models.InsuranceClaim{PatientID: fx.patient.ID, ClaimAmount: 2000})
	require.NoError(t, err)

	_, err = svc.Adjudicate(claim.ID, models.ClaimProcessing, nil, "")
	require.NoError(t, err)

	amount := 1800.0
	approved, err := svc.Adjudicate(claim.ID, models.ClaimApproved, &amount, "partially approved")
	require.NoError(t, err)
	assert.Equal(t, models.ClaimApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAmount)
	assert.Equal(t, 1800.0, *approved.ApprovedAmount)
	assert.NotNil(t, approved.ProcessedDate)
}

func TestAdjudicateApprovalRequiresAmount(t *testing.T) {
	fx := newFixture(t)
	svc := NewClaimService(fx.store)

	claim, err := svc.SubmitClaim(&models.InsuranceClaim{PatientID: fx.patient.ID, ClaimAmount: 2000})
	require.NoError(t, err)

	_, err = svc.Adjudicate(claim.ID, models.ClaimApproved, nil, "")
	assert.True(t, IsValidation(err))

	tooMuch := 5000.0
	_, err = svc.Adjudicate(claim.ID, models.ClaimApproved, &tooMuch, "")
	assert.True(t, IsValidation(err))
}

func TestAdjudicateTerminalClaimRejectsFurtherTransitions(t *testing.T) {
	fx := newFixture(t)
	svc := NewClaimService(fx.store)

	claim, err := svc.SubmitClaim(&models.InsuranceClaim{PatientID: fx.patient.ID, ClaimAmount: 300})
	require.NoError(t, err)

	_, err = svc.Adjudicate(claim.ID, models.ClaimRejected, nil, "not covered")
	require.NoError(t, err)

	_, err = svc.Adjudicate(claim.ID, models.ClaimProcessing, nil, "")
	assert.True(t, IsValidation(err))
}
