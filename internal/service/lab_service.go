package service

import (
	"fmt"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"
)

type LabService struct {
	store repository.Store
}

func NewLabService(store repository.Store) *LabService {
	return &LabService{store: store}
}

// CreateLabTest orders a test. New tests always start at ordered with
// null results; a request carrying results is rejected.
func (s *LabService) CreateLabTest(labTest *models.LabTest) (*models.LabTest, error) {
	if labTest.TestName == "" || labTest.TestType == "" {
		return nil, validationErrorf("test name and test type are required")
	}
	if len(labTest.Results) > 0 {
		return nil, validationErrorf("results cannot be supplied when ordering a test")
	}
	if _, err := s.store.GetPatient(labTest.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetDoctor(labTest.DoctorID); err != nil {
		return nil, err
	}

	labTest.Status = models.LabTestOrdered
	if err := s.store.CreateLabTest(labTest); err != nil {
		return nil, fmt.Errorf("failed to create lab test: %w", err)
	}

	_ = s.store.CreateAuditLog(nil, "lab_test_ordered", fmt.Sprintf("Lab test %d (%s) ordered for patient %d", labTest.ID, labTest.TestName, labTest.PatientID))

	return labTest, nil
}

func (s *LabService) GetLabTest(id uint) (*models.LabTest, error) {
	return s.store.GetLabTest(id)
}

func (s *LabService) ListByPatient(patientID uint) ([]models.LabTest, error) {
	return s.store.ListLabTestsByPatient(patientID)
}

func (s *LabService) ListByDoctor(doctorID uint) ([]models.LabTest, error) {
	return s.store.ListLabTestsByDoctor(doctorID)
}

func (s *LabService) ListPendingByDoctor(doctorID uint) ([]models.LabTest, error) {
	return s.store.ListPendingLabTests(doctorID)
}

// LabTestUpdate carries the PATCH body for a lab test.
type LabTestUpdate struct {
	Status    *models.LabTestStatus
	Results   []byte
	ReportURL *string
}

// UpdateLabTest advances a test through its monotonic lifecycle.
// Results may be attached only when the update lands on completed;
// earlier stages must keep results null.
func (s *LabService) UpdateLabTest(id uint, update LabTestUpdate) (*models.LabTest, error) {
	labTest, err := s.store.GetLabTest(id)
	if err != nil {
		return nil, err
	}

	if update.Status != nil && *update.Status != labTest.Status {
		if !update.Status.Valid() {
			return nil, validationErrorf(fmt.Sprintf("invalid lab test status %q", *update.Status))
		}
		if !labTest.Status.CanTransitionTo(*update.Status) {
			return nil, validationErrorf(fmt.Sprintf("cannot transition lab test from %s to %s", labTest.Status, *update.Status))
		}
		labTest.Status = *update.Status
	}

	if len(update.Results) > 0 {
		if labTest.Status != models.LabTestCompleted {
			return nil, validationErrorf("results can only be attached to a completed test")
		}
		labTest.Results = update.Results
	}
	if update.ReportURL != nil {
		labTest.ReportURL = *update.ReportURL
	}

	if err := s.store.UpdateLabTest(labTest); err != nil {
		return nil, fmt.Errorf("failed to update lab test: %w", err)
	}
	return labTest, nil
}
