package repository

import (
	"sort"
	"sync"
	"time"

	"easymed-backend/internal/models"
)

// MemoryStore is the in-memory Store implementation behind the demo
// route tree. It holds fixtures per process, is safe for concurrent
// request handling, and persists nothing. The tests use it as the
// persistence double.
type MemoryStore struct {
	mu sync.RWMutex

	nextID        map[string]uint
	users         map[uint]models.User
	doctors       map[uint]models.Doctor
	patients      map[uint]models.Patient
	appointments  map[uint]models.Appointment
	records       map[uint]models.MedicalRecord
	prescriptions map[uint]models.Prescription
	labTests      map[uint]models.LabTest
	consultations map[uint]models.AiConsultation
	claims        map[uint]models.InsuranceClaim
	auditLogs     []models.AuditLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:        map[string]uint{},
		users:         map[uint]models.User{},
		doctors:       map[uint]models.Doctor{},
		patients:      map[uint]models.Patient{},
		appointments:  map[uint]models.Appointment{},
		records:       map[uint]models.MedicalRecord{},
		prescriptions: map[uint]models.Prescription{},
		labTests:      map[uint]models.LabTest{},
		consultations: map[uint]models.AiConsultation{},
		claims:        map[uint]models.InsuranceClaim{},
	}
}

func (s *MemoryStore) allocate(entity string) uint {
	s.nextID[entity]++
	return s.nextID[entity]
}

// User management

func (s *MemoryStore) GetUser(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.allocate("users")
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) UpdateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

// Doctor management

func (s *MemoryStore) GetDoctor(id uint) (*models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doctor, ok := s.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &doctor, nil
}

func (s *MemoryStore) GetDoctorByUserID(userID uint) (*models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doctor := range s.doctors {
		if doctor.UserID == userID {
			d := doctor
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetDoctorByCouncilID(councilID string) (*models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doctor := range s.doctors {
		if doctor.MedicalCouncilID == councilID {
			d := doctor
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateDoctor(doctor *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor.ID = s.allocate("doctors")
	s.doctors[doctor.ID] = *doctor
	return nil
}

func (s *MemoryStore) UpdateDoctor(doctor *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doctors[doctor.ID]; !ok {
		return ErrNotFound
	}
	s.doctors[doctor.ID] = *doctor
	return nil
}

func (s *MemoryStore) ListDoctors() ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doctors := make([]models.Doctor, 0, len(s.doctors))
	for _, doctor := range s.doctors {
		doctors = append(doctors, doctor)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	return doctors, nil
}

// Patient management

func (s *MemoryStore) GetPatient(id uint) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	patient, ok := s.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &patient, nil
}

func (s *MemoryStore) GetPatientByUserID(userID uint) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, patient := range s.patients {
		if patient.UserID == userID {
			p := patient
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetPatientByAadhaar(aadhaarNumber string) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, patient := range s.patients {
		if patient.AadhaarNumber != nil && *patient.AadhaarNumber == aadhaarNumber {
			p := patient
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreatePatient(patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	patient.ID = s.allocate("patients")
	s.patients[patient.ID] = *patient
	return nil
}

func (s *MemoryStore) UpdatePatient(patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[patient.ID]; !ok {
		return ErrNotFound
	}
	s.patients[patient.ID] = *patient
	return nil
}

func (s *MemoryStore) ListPatients() ([]models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	patients := make([]models.Patient, 0, len(s.patients))
	for _, patient := range s.patients {
		patients = append(patients, patient)
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}

// Appointment management

func (s *MemoryStore) GetAppointment(id uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appointment, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appointment, nil
}

func (s *MemoryStore) CreateAppointment(appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointment.ID = s.allocate("appointments")
	appointment.CreatedAt = time.Now()
	s.appointments[appointment.ID] = *appointment
	return nil
}

func (s *MemoryStore) UpdateAppointment(appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[appointment.ID]; !ok {
		return ErrNotFound
	}
	s.appointments[appointment.ID] = *appointment
	return nil
}

func (s *MemoryStore) listAppointments(match func(models.Appointment) bool, newestFirst bool) []models.Appointment {
	appointments := []models.Appointment{}
	for _, appointment := range s.appointments {
		if match(appointment) {
			appointments = append(appointments, appointment)
		}
	}
	sort.Slice(appointments, func(i, j int) bool {
		if newestFirst {
			return appointments[i].AppointmentDate.After(appointments[j].AppointmentDate)
		}
		return appointments[i].AppointmentDate.Before(appointments[j].AppointmentDate)
	})
	return appointments
}

func (s *MemoryStore) ListAppointmentsByDoctor(doctorID uint) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listAppointments(func(a models.Appointment) bool {
		return a.DoctorID == doctorID
	}, true), nil
}

func (s *MemoryStore) ListAppointmentsByPatient(patientID uint) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listAppointments(func(a models.Appointment) bool {
		return a.PatientID == patientID
	}, true), nil
}

func (s *MemoryStore) ListTodaysAppointments(doctorID uint) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start, end := dayBounds(time.Now())
	return s.listAppointments(func(a models.Appointment) bool {
		return a.DoctorID == doctorID && !a.AppointmentDate.Before(start) && !a.AppointmentDate.After(end)
	}, false), nil
}

func (s *MemoryStore) ListUpcomingAppointments(doctorID uint) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := time.Now()
	return s.listAppointments(func(a models.Appointment) bool {
		return a.DoctorID == doctorID && !a.AppointmentDate.Before(now) && a.Status == models.AppointmentScheduled
	}, false), nil
}

// Medical record management

func (s *MemoryStore) GetMedicalRecord(id uint) (*models.MedicalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (s *MemoryStore) CreateMedicalRecord(record *models.MedicalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ID = s.allocate("records")
	record.CreatedAt = time.Now()
	s.records[record.ID] = *record
	return nil
}

func (s *MemoryStore) UpdateMedicalRecord(record *models.MedicalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[record.ID]; !ok {
		return ErrNotFound
	}
	s.records[record.ID] = *record
	return nil
}

func (s *MemoryStore) listRecords(match func(models.MedicalRecord) bool) []models.MedicalRecord {
	records := []models.MedicalRecord{}
	for _, record := range s.records {
		if match(record) {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.After(records[j].CreatedAt) })
	return records
}

func (s *MemoryStore) ListMedicalRecordsByPatient(patientID uint) ([]models.MedicalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listRecords(func(r models.MedicalRecord) bool { return r.PatientID == patientID }), nil
}

func (s *MemoryStore) ListMedicalRecordsByDoctor(doctorID uint) ([]models.MedicalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listRecords(func(r models.MedicalRecord) bool { return r.DoctorID == doctorID }), nil
}

// Prescription management

func (s *MemoryStore) GetPrescription(id uint) (*models.Prescription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prescription, ok := s.prescriptions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &prescription, nil
}

func (s *MemoryStore) CreatePrescription(prescription *models.Prescription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prescription.ID = s.allocate("prescriptions")
	prescription.CreatedAt = time.Now()
	s.prescriptions[prescription.ID] = *prescription
	return nil
}

func (s *MemoryStore) UpdatePrescription(prescription *models.Prescription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.prescriptions[prescription.ID]; !ok {
		return ErrNotFound
	}
	s.prescriptions[prescription.ID] = *prescription
	return nil
}

func (s *MemoryStore) listPrescriptions(match func(models.Prescription) bool) []models.Prescription {
	prescriptions := []models.Prescription{}
	for _, prescription := range s.prescriptions {
		if match(prescription) {
			prescriptions = append(prescriptions, prescription)
		}
	}
	sort.Slice(prescriptions, func(i, j int) bool {
		return prescriptions[i].CreatedAt.After(prescriptions[j].CreatedAt)
	})
	return prescriptions
}

func (s *MemoryStore) ListPrescriptionsByPatient(patientID uint) ([]models.Prescription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listPrescriptions(func(p models.Prescription) bool { return p.PatientID == patientID }), nil
}

func (s *MemoryStore) ListPrescriptionsByDoctor(doctorID uint) ([]models.Prescription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listPrescriptions(func(p models.Prescription) bool { return p.DoctorID == doctorID }), nil
}

// Lab test management

func (s *MemoryStore) GetLabTest(id uint) (*models.LabTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	labTest, ok := s.labTests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &labTest, nil
}

func (s *MemoryStore) CreateLabTest(labTest *models.LabTest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	labTest.ID = s.allocate("labTests")
	labTest.CreatedAt = time.Now()
	s.labTests[labTest.ID] = *labTest
	return nil
}

func (s *MemoryStore) UpdateLabTest(labTest *models.LabTest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.labTests[labTest.ID]; !ok {
		return ErrNotFound
	}
	s.labTests[labTest.ID] = *labTest
	return nil
}

func (s *MemoryStore) listLabTests(match func(models.LabTest) bool) []models.LabTest {
	labTests := []models.LabTest{}
	for _, labTest := range s.labTests {
		if match(labTest) {
			labTests = append(labTests, labTest)
		}
	}
	sort.Slice(labTests, func(i, j int) bool { return labTests[i].CreatedAt.After(labTests[j].CreatedAt) })
	return labTests
}

func (s *MemoryStore) ListLabTestsByPatient(patientID uint) ([]models.LabTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLabTests(func(t models.LabTest) bool { return t.PatientID == patientID }), nil
}

func (s *MemoryStore) ListLabTestsByDoctor(doctorID uint) ([]models.LabTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLabTests(func(t models.LabTest) bool { return t.DoctorID == doctorID }), nil
}

func (s *MemoryStore) ListPendingLabTests(doctorID uint) ([]models.LabTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLabTests(func(t models.LabTest) bool {
		return t.DoctorID == doctorID && !t.Status.Terminal()
	}), nil
}

// AI consultation management

func (s *MemoryStore) GetAiConsultation(id uint) (*models.AiConsultation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	consultation, ok := s.consultations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &consultation, nil
}

func (s *MemoryStore) CreateAiConsultation(consultation *models.AiConsultation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	consultation.ID = s.allocate("consultations")
	consultation.CreatedAt = time.Now()
	s.consultations[consultation.ID] = *consultation
	return nil
}

func (s *MemoryStore) UpdateAiConsultation(consultation *models.AiConsultation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.consultations[consultation.ID]; !ok {
		return ErrNotFound
	}
	s.consultations[consultation.ID] = *consultation
	return nil
}

func (s *MemoryStore) ListAiConsultationsByPatient(patientID uint) ([]models.AiConsultation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	consultations := []models.AiConsultation{}
	for _, consultation := range s.consultations {
		if consultation.PatientID != nil && *consultation.PatientID == patientID {
			consultations = append(consultations, consultation)
		}
	}
	sort.Slice(consultations, func(i, j int) bool {
		return consultations[i].CreatedAt.After(consultations[j].CreatedAt)
	})
	return consultations, nil
}

// Insurance claim management

func (s *MemoryStore) GetInsuranceClaim(id uint) (*models.InsuranceClaim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	claim, ok := s.claims[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &claim, nil
}

func (s *MemoryStore) CreateInsuranceClaim(claim *models.InsuranceClaim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	claim.ID = s.allocate("claims")
	if claim.SubmittedDate.IsZero() {
		claim.SubmittedDate = time.Now()
	}
	s.claims[claim.ID] = *claim
	return nil
}

func (s *MemoryStore) UpdateInsuranceClaim(claim *models.InsuranceClaim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.claims[claim.ID]; !ok {
		return ErrNotFound
	}
	s.claims[claim.ID] = *claim
	return nil
}

func (s *MemoryStore) ListInsuranceClaimsByPatient(patientID uint) ([]models.InsuranceClaim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	claims := []models.InsuranceClaim{}
	for _, claim := range s.claims {
		if claim.PatientID == patientID {
			claims = append(claims, claim)
		}
	}
	sort.Slice(claims, func(i, j int) bool { return claims[i].SubmittedDate.After(claims[j].SubmittedDate) })
	return claims, nil
}

// Audit logging

func (s *MemoryStore) CreateAuditLog(userID *uint, action string, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLogs = append(s.auditLogs, models.AuditLog{
		ID:        uint(len(s.auditLogs) + 1),
		UserID:    userID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

// Dashboard statistics

func (s *MemoryStore) DashboardStats(doctorID uint) (*DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &DashboardStats{}
	start, end := dayBounds(time.Now())
	for _, appointment := range s.appointments {
		if appointment.DoctorID != doctorID {
			continue
		}
		stats.ActivePatients++
		if !appointment.AppointmentDate.Before(start) && !appointment.AppointmentDate.After(end) {
			stats.TodayAppointments++
		}
	}
	for _, labTest := range s.labTests {
		if labTest.DoctorID == doctorID && !labTest.Status.Terminal() {
			stats.PendingLabs++
		}
	}
	weekAgo := time.Now().Add(-7 * 24 * time.Hour)
	for _, consultation := range s.consultations {
		if consultation.CreatedAt.After(weekAgo) {
			stats.AiConsultations++
		}
	}
	return stats, nil
}
