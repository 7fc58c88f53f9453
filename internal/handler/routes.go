package handler

import (
	"easymed-backend/internal/middleware"
	"easymed-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler over one data store. The
// authenticated tree and the demo tree each get their own bundle: the
// same handler code runs in both, bound to the gorm store or to the
// seeded in-memory fixture store.
type Handlers struct {
	Auth         *AuthHandler
	Doctor       *DoctorHandler
	Patient      *PatientHandler
	Appointment  *AppointmentHandler
	Record       *RecordHandler
	Prescription *PrescriptionHandler
	Lab          *LabHandler
	Triage       *TriageHandler
	Claim        *ClaimHandler
	Dashboard    *DashboardHandler
	Voice        *VoiceHandler
}

// RegisterRoutes wires the public and authenticated API trees.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}
	api.GET("/doctors", h.Doctor.List)
	api.GET("/doctors/:id", h.Doctor.Get)

	// Authenticated routes
	authenticated := api.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.GET("/users/me", h.Auth.Me)

		authenticated.POST("/doctors", middleware.RequireRole(models.RoleDoctor), h.Doctor.Create)
		authenticated.PATCH("/doctors/:id/availability", middleware.RequireRole(models.RoleDoctor), h.Doctor.UpdateAvailability)

		authenticated.GET("/patients", h.Patient.List)
		authenticated.POST("/patients", h.Patient.Create)
		authenticated.GET("/patients/:id", h.Patient.Get)
		authenticated.PATCH("/patients/:id", h.Patient.Update)
		authenticated.POST("/patients/verify-aadhaar", h.Patient.VerifyAadhaar)

		authenticated.POST("/appointments", h.Appointment.Create)
		authenticated.GET("/appointments/:id", h.Appointment.Get)
		authenticated.PATCH("/appointments/:id", h.Appointment.Update)
		authenticated.GET("/appointments/doctor/:doctorId", h.Appointment.ListByDoctor)
		authenticated.GET("/appointments/doctor/:doctorId/today", h.Appointment.ListTodayByDoctor)
		authenticated.GET("/appointments/doctor/:doctorId/upcoming", h.Appointment.ListUpcomingByDoctor)
		authenticated.GET("/appointments/patient/:patientId", h.Appointment.ListByPatient)

		authenticated.POST("/medical-records", middleware.RequireRole(models.RoleDoctor), h.Record.Create)
		authenticated.GET("/medical-records/:id", h.Record.Get)
		authenticated.PATCH("/medical-records/:id", middleware.RequireRole(models.RoleDoctor), h.Record.Amend)
		authenticated.GET("/medical-records/patient/:patientId", h.Record.ListByPatient)
		authenticated.GET("/medical-records/doctor/:doctorId", h.Record.ListByDoctor)

		authenticated.POST("/prescriptions", middleware.RequireRole(models.RoleDoctor), h.Prescription.Create)
		authenticated.GET("/prescriptions/:id", h.Prescription.Get)
		authenticated.PATCH("/prescriptions/:id", middleware.RequireRole(models.RoleDoctor), h.Prescription.UpdateStatus)
		authenticated.GET("/prescriptions/patient/:patientId", h.Prescription.ListByPatient)
		authenticated.GET("/prescriptions/doctor/:doctorId", h.Prescription.ListByDoctor)

		authenticated.POST("/lab-tests", middleware.RequireRole(models.RoleDoctor), h.Lab.Create)
		authenticated.GET("/lab-tests/:id", h.Lab.Get)
		authenticated.PATCH("/lab-tests/:id", middleware.RequireRole(models.RoleDoctor), h.Lab.Update)
		authenticated.GET("/lab-tests/patient/:patientId", h.Lab.ListByPatient)
		authenticated.GET("/lab-tests/doctor/:doctorId", h.Lab.ListByDoctor)
		authenticated.GET("/lab-tests/doctor/:doctorId/pending", h.Lab.ListPendingByDoctor)

		authenticated.POST("/ai-consultations", h.Triage.Analyze)
		authenticated.GET("/ai-consultations/:id", h.Triage.Get)
		authenticated.PATCH("/ai-consultations/:id/review", middleware.RequireRole(models.RoleDoctor), h.Triage.Review)
		authenticated.GET("/ai-consultations/patient/:patientId", h.Triage.ListByPatient)
		authenticated.POST("/health-insights", h.Triage.Insights)

		authenticated.POST("/insurance-claims", h.Claim.Submit)
		authenticated.GET("/insurance-claims/:id", h.Claim.Get)
		authenticated.PATCH("/insurance-claims/:id", middleware.RequireRole(models.RoleAdmin), h.Claim.Adjudicate)
		authenticated.GET("/insurance-claims/patient/:patientId", h.Claim.ListByPatient)

		authenticated.GET("/dashboard/stats/:doctorId", h.Dashboard.Stats)

		authenticated.POST("/voice-assistant", h.Voice.Resolve)
		authenticated.POST("/emergency/108", h.Voice.Emergency)
	}
}

// RegisterDemoRoutes mirrors the API under /api/demo with no
// authentication, for evaluation against the seeded fixture store.
// Writes land in memory and vanish on restart.
func RegisterDemoRoutes(r *gin.Engine, h *Handlers) {
	demo := r.Group("/api/demo")
	{
		demo.GET("/doctors", h.Doctor.List)
		demo.GET("/doctors/:id", h.Doctor.Get)

		demo.GET("/patients", h.Patient.List)
		demo.POST("/patients", h.Patient.Create)
		demo.GET("/patients/:id", h.Patient.Get)
		demo.POST("/patients/verify-aadhaar", h.Patient.VerifyAadhaar)

		demo.POST("/appointments", h.Appointment.Create)
		demo.GET("/appointments/doctor/:doctorId", h.Appointment.ListByDoctor)
		demo.GET("/appointments/doctor/:doctorId/today", h.Appointment.ListTodayByDoctor)
		demo.GET("/appointments/patient/:patientId", h.Appointment.ListByPatient)

		demo.GET("/medical-records/patient/:patientId", h.Record.ListByPatient)

		demo.POST("/prescriptions", h.Prescription.Create)
		demo.GET("/prescriptions/patient/:patientId", h.Prescription.ListByPatient)

		demo.POST("/lab-tests", h.Lab.Create)
		demo.GET("/lab-tests/patient/:patientId", h.Lab.ListByPatient)

		demo.POST("/ai-consultations", h.Triage.Analyze)
		demo.GET("/ai-consultations/patient/:patientId", h.Triage.ListByPatient)

		demo.GET("/dashboard/stats/:doctorId", h.Dashboard.Stats)

		demo.POST("/voice-assistant", h.Voice.Resolve)
		demo.POST("/emergency/108", h.Voice.Emergency)
	}
}
