package handler

import (
	"net/http"
	"time"

	"easymed-backend/internal/models"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

type CreateAppointmentRequest struct {
	PatientID       uint      `json:"patientId" binding:"required"`
	DoctorID        uint      `json:"doctorId" binding:"required"`
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
	Duration        int       `json:"duration"`
	Type            string    `json:"type" binding:"omitempty,oneof=in-person telemedicine"`
	Reason          string    `json:"reason"`
}

// Create books an appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(&models.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Duration:        req.Duration,
		Type:            req.Type,
		Reason:          req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, appointment)
}

// Get returns one appointment by id
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentService.GetAppointment(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}

// ListByDoctor returns a doctor's appointments, newest first
func (h *AppointmentHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}

	appointments, err := h.appointmentService.ListByDoctor(doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, appointments)
}

// ListTodayByDoctor returns a doctor's appointments within today's
// server-local day bounds
func (h *AppointmentHandler) ListTodayByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}

	appointments, err := h.appointmentService.ListTodaysByDoctor(doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, appointments)
}

// ListUpcomingByDoctor returns a doctor's future scheduled appointments
func (h *AppointmentHandler) ListUpcomingByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}

	appointments, err := h.appointmentService.ListUpcomingByDoctor(doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, appointments)
}

// ListByPatient returns a patient's appointments, newest first
func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}

	appointments, err := h.appointmentService.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, appointments)
}

type UpdateAppointmentRequest struct {
	Status          *string    `json:"status" binding:"omitempty,oneof=scheduled in-progress completed cancelled"`
	AppointmentDate *time.Time `json:"appointmentDate"`
	Duration        *int       `json:"duration"`
	Notes           *string    `json:"notes"`
}

// Update applies a partial update, enforcing the status lifecycle
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := service.AppointmentUpdate{
		AppointmentDate: req.AppointmentDate,
		Duration:        req.Duration,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		status := models.AppointmentStatus(*req.Status)
		update.Status = &status
	}

	appointment, err := h.appointmentService.UpdateAppointment(id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}
