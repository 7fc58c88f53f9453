package service

import (
	"testing"

	"easymed-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecordRejectsUnknownType(t *testing.T) {
	fx := newFixture(t)
	svc := NewRecordService(fx.store)

	_, err := svc.CreateRecord(&models.MedicalRecord{
		PatientID:  fx.patient.ID,
		DoctorID:   fx.doctor.ID,
		RecordType: "surgery",
		Title:      "Appendectomy",
	})
	assert.True(t, IsValidation(err))
}

func TestCreateRecordRequiresTitle(t *testing.T) {
	fx := newFixture(t)
	svc := NewRecordService(fx.store)

	_, err := svc.CreateRecord(&models.MedicalRecord{
		PatientID:  fx.patient.ID,
		DoctorID:   fx.doctor.ID,
		RecordType: models.RecordDiagnosis,
	})
	assert.True(t, IsValidation(err))
}

func TestAmendRecordPreservesTypeAndParties(t *testing.T) {
	fx := newFixture(t)
	svc := NewRecordService(fx.store)

	record, err := svc.CreateRecord(&models.MedicalRecord{
		PatientID:  fx.patient.ID,
		DoctorID:   fx.doctor.ID,
		RecordType: models.RecordConsultation,
		Title:      "Fever follow-up",
		Diagnosis:  "Viral fever",
	})
	require.NoError(t, err)

	amended, err := svc.AmendRecord(record.ID, "Dengue fever", "IV fluids, platelet monitoring")
	require.NoError(t, err)
	assert.Equal(t, "Dengue fever", amended.Diagnosis)
	assert.Equal(t, "IV fluids, platelet monitoring", amended.Treatment)

	// The record's identity never changes on amendment.
	assert.Equal(t, models.RecordConsultation, amended.RecordType)
	assert.Equal(t, fx.patient.ID, amended.PatientID)
	assert.Equal(t, fx.doctor.ID, amended.DoctorID)
	assert.Equal(t, "Fever follow-up", amended.Title)
}

func TestAmendRecordKeepsExistingFieldsWhenOmitted(t *testing.T) {
	fx := newFixture(t)
	svc := NewRecordService(fx.store)

	record, err := svc.CreateRecord(&models.MedicalRecord{
		PatientID:  fx.patient.ID,
		DoctorID:   fx.doctor.ID,
		RecordType: models.RecordTreatment,
		Title:      "Physiotherapy plan",
		Treatment:  "Weekly sessions",
	})
	require.NoError(t, err)

	amended, err := svc.AmendRecord(record.ID, "Lumbar strain", "")
	require.NoError(t, err)
	assert.Equal(t, "Lumbar strain", amended.Diagnosis)
	assert.Equal(t, "Weekly sessions", amended.Treatment)
}
