package service

import (
	"fmt"
	"strings"
	"time"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"

	"github.com/google/uuid"
)

type ClaimService struct {
	store repository.Store
}

func NewClaimService(store repository.Store) *ClaimService {
	return &ClaimService{store: store}
}

// newClaimNumber mints a unique human-readable claim number, distinct
// from the row id.
func newClaimNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CLM" + strings.ToUpper(raw[:12])
}

// SubmitClaim files a claim. The claim number is minted here and never
// changes afterwards.
func (s *ClaimService) SubmitClaim(claim *models.InsuranceClaim) (*models.InsuranceClaim, error) {
	if claim.ClaimAmount <= 0 {
		return nil, validationErrorf("claim amount must be positive")
	}
	patient, err := s.store.GetPatient(claim.PatientID)
	if err != nil {
		return nil, err
	}
	if patient.InsuranceProvider == "" {
		return nil, validationErrorf("patient has no insurance provider on record")
	}
	if claim.AppointmentID != nil {
		if _, err := s.store.GetAppointment(*claim.AppointmentID); err != nil {
			return nil, err
		}
	}
	if claim.LabTestID != nil {
		if _, err := s.store.GetLabTest(*claim.LabTestID); err != nil {
			return nil, err
		}
	}

	claim.ClaimNumber = newClaimNumber()
	claim.Status = models.ClaimSubmitted
	claim.SubmittedDate = time.Now()
	claim.ApprovedAmount = nil
	claim.ProcessedDate = nil

	if err := s.store.CreateInsuranceClaim(claim); err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	_ = s.store.CreateAuditLog(nil, "claim_submitted", fmt.Sprintf("Claim %s submitted for patient %d", claim.ClaimNumber, claim.PatientID))

	return claim, nil
}

func (s *ClaimService) GetClaim(id uint) (*models.InsuranceClaim, error) {
	return s.store.GetInsuranceClaim(id)
}

func (s *ClaimService) ListByPatient(patientID uint) ([]models.InsuranceClaim, error) {
	return s.store.ListInsuranceClaimsByPatient(patientID)
}

// Adjudicate moves a claim through submitted -> processing ->
// approved|rejected. An approval must carry an approved amount no
// larger than the claimed amount; terminal states stamp the processed
// date.
func (s *ClaimService) Adjudicate(id uint, status models.ClaimStatus, approvedAmount *float64, notes string) (*models.InsuranceClaim, error) {
	if !status.Valid() {
		return nil, validationErrorf(fmt.Sprintf("invalid claim status %q", status))
	}

	claim, err := s.store.GetInsuranceClaim(id)
	if err != nil {
		return nil, err
	}
	if !claim.Status.CanTransitionTo(status) {
		return nil, validationErrorf(fmt.Sprintf("cannot transition claim from %s to %s", claim.Status, status))
	}

	if status == models.ClaimApproved {
		if approvedAmount == nil {
			return nil, validationErrorf("approved amount is required to approve a claim")
		}
		if *approvedAmount <= 0 || *approvedAmount > claim.ClaimAmount {
			return nil, validationErrorf("approved amount must be positive and no larger than the claimed amount")
		}
		claim.ApprovedAmount = approvedAmount
	}

	claim.Status = status
	if notes != "" {
		claim.Notes = notes
	}
	if status == models.ClaimApproved || status == models.ClaimRejected {
		now := time.Now()
		claim.ProcessedDate = &now
	}

	if err := s.store.UpdateInsuranceClaim(claim); err != nil {
		return nil, fmt.Errorf("failed to update claim: %w", err)
	}

	_ = s.store.CreateAuditLog(nil, "claim_adjudicated", fmt.Sprintf("Claim %s moved to %s", claim.ClaimNumber, status))

	return claim, nil
}
