package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"easymed-backend/internal/models"
	"easymed-backend/pkg/utils"
)

// SeedDemoData populates a store with the fixture served by the demo
// route tree: one doctor, one patient, an appointment booked for
// today, an active prescription, and a pending lab test.
func SeedDemoData(store Store) error {
	passwordHash, err := utils.HashPassword("demo1234")
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	doctorUser := &models.User{
		Username:     "dr.sharma",
		Email:        "dr.sharma@easymed.in",
		PasswordHash: passwordHash,
		Role:         models.RoleDoctor,
		FirstName:    "Priya",
		LastName:     "Sharma",
		PhoneNumber:  "+91-9800000001",
		IsActive:     true,
	}
	if err := store.CreateUser(doctorUser); err != nil {
		return err
	}

	slots, _ := json.Marshal([]string{"09:00", "09:30", "10:00", "16:00", "16:30"})
	doctor := &models.Doctor{
		UserID:              doctorUser.ID,
		MedicalCouncilID:    "MCI-2019-48213",
		Specialization:      "General Medicine",
		Qualifications:      "MBBS, MD",
		Experience:          12,
		ConsultationFee:     500,
		IsVerified:          true,
		HospitalAffiliation: "District Hospital, Pune",
		AvailableSlots:      slots,
	}
	if err := store.CreateDoctor(doctor); err != nil {
		return err
	}

	patientUser := &models.User{
		Username:     "ramesh.kumar",
		Email:        "ramesh.kumar@example.in",
		PasswordHash: passwordHash,
		Role:         models.RolePatient,
		FirstName:    "Ramesh",
		LastName:     "Kumar",
		PhoneNumber:  "+91-9800000002",
		IsActive:     true,
	}
	if err := store.CreateUser(patientUser); err != nil {
		return err
	}

	aadhaar := "123412341234"
	dateOfBirth := time.Date(1985, time.March, 14, 0, 0, 0, 0, time.UTC)
	patient := &models.Patient{
		UserID:            patientUser.ID,
		AadhaarNumber:     &aadhaar,
		AadhaarVerified:   false,
		DateOfBirth:       &dateOfBirth,
		Gender:            "male",
		BloodGroup:        "B+",
		EmergencyContact:  "+91-9800000003",
		Address:           "42 MG Road, Pune, Maharashtra",
		InsuranceProvider: "Ayushman Bharat",
		InsuranceNumber:   "AB-MH-7712345",
		Allergies:         "penicillin",
	}
	if err := store.CreatePatient(patient); err != nil {
		return err
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location()),
		Duration:        30,
		Status:          models.AppointmentScheduled,
		Type:            models.AppointmentInPerson,
		Reason:          "Recurring fever and fatigue",
	}
	if err := store.CreateAppointment(appointment); err != nil {
		return err
	}

	medications, _ := json.Marshal([]models.Medication{
		{Name: "Paracetamol", Dosage: "500mg", Frequency: "twice daily", Duration: "5 days"},
	})
	prescription := &models.Prescription{
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: &appointment.ID,
		Medications:   medications,
		Instructions:  "Take after meals with water",
		Status:        models.PrescriptionActive,
	}
	if err := store.CreatePrescription(prescription); err != nil {
		return err
	}

	labTest := &models.LabTest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		TestName:    "Complete Blood Count",
		TestType:    "hematology",
		Status:      models.LabTestOrdered,
		LabProvider: "Dr. Lal PathLabs",
		Cost:        350,
	}
	if err := store.CreateLabTest(labTest); err != nil {
		return err
	}

	record := &models.MedicalRecord{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		RecordType:  models.RecordConsultation,
		Title:       "Initial consultation",
		Description: "Patient reports fever for three days with fatigue.",
		Diagnosis:   "Suspected viral fever",
		Treatment:   "Symptomatic treatment, CBC ordered",
	}
	return store.CreateMedicalRecord(record)
}
