package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	assert.True(t, AppointmentScheduled.CanTransitionTo(AppointmentInProgress))
	assert.True(t, AppointmentScheduled.CanTransitionTo(AppointmentCancelled))
	assert.True(t, AppointmentInProgress.CanTransitionTo(AppointmentCompleted))

	assert.False(t, AppointmentScheduled.CanTransitionTo(AppointmentCompleted))
	assert.False(t, AppointmentInProgress.CanTransitionTo(AppointmentCancelled))
	assert.False(t, AppointmentCompleted.CanTransitionTo(AppointmentScheduled))
	assert.False(t, AppointmentCancelled.CanTransitionTo(AppointmentInProgress))
}

func TestLabTestStatusIsMonotonic(t *testing.T) {
	assert.True(t, LabTestOrdered.CanTransitionTo(LabTestSampleCollected))
	assert.True(t, LabTestOrdered.CanTransitionTo(LabTestCompleted))
	assert.True(t, LabTestSampleCollected.CanTransitionTo(LabTestInProgress))
	assert.True(t, LabTestInProgress.CanTransitionTo(LabTestCompleted))

	// No regression, ever.
	assert.False(t, LabTestCompleted.CanTransitionTo(LabTestInProgress))
	assert.False(t, LabTestInProgress.CanTransitionTo(LabTestOrdered))
	assert.False(t, LabTestSampleCollected.CanTransitionTo(LabTestSampleCollected))

	assert.False(t, LabTestStatus("shipped").CanTransitionTo(LabTestCompleted))
	assert.False(t, LabTestOrdered.CanTransitionTo(LabTestStatus("archived")))
}

func TestLabTestTerminal(t *testing.T) {
	assert.True(t, LabTestCompleted.Terminal())
	for _, status := range PendingLabStatuses() {
		assert.False(t, status.Terminal(), "status %s", status)
	}
}

func TestClaimStatusTransitions(t *testing.T) {
	assert.True(t, ClaimSubmitted.CanTransitionTo(ClaimProcessing))
	assert.True(t, ClaimSubmitted.CanTransitionTo(ClaimApproved))
	assert.True(t, ClaimSubmitted.CanTransitionTo(ClaimRejected))
	assert.True(t, ClaimProcessing.CanTransitionTo(ClaimApproved))
	assert.True(t, ClaimProcessing.CanTransitionTo(ClaimRejected))

	assert.False(t, ClaimApproved.CanTransitionTo(ClaimRejected))
	assert.False(t, ClaimRejected.CanTransitionTo(ClaimProcessing))
	assert.False(t, ClaimProcessing.CanTransitionTo(ClaimSubmitted))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleDoctor))
	assert.True(t, ValidRole(RolePatient))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("nurse"))
	assert.False(t, ValidRole(""))
}

func TestValidRecordType(t *testing.T) {
	assert.True(t, ValidRecordType(RecordConsultation))
	assert.True(t, ValidRecordType(RecordLabResult))
	assert.False(t, ValidRecordType("invoice"))
}
