package handler

import (
	"net/http"
	"time"

	"easymed-backend/internal/models"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	prescriptionService *service.PrescriptionService
}

func NewPrescriptionHandler(prescriptionService *service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: prescriptionService}
}

type CreatePrescriptionRequest struct {
	PatientID     uint                `json:"patientId" binding:"required"`
	DoctorID      uint                `json:"doctorId" binding:"required"`
	AppointmentID *uint               `json:"appointmentId"`
	Medications   []models.Medication `json:"medications" binding:"required,min=1,dive"`
	Instructions  string              `json:"instructions"`
	ValidUntil    *time.Time          `json:"validUntil"`
}

// Create issues a prescription
func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	prescription, err := h.prescriptionService.CreatePrescription(&models.Prescription{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		Instructions:  req.Instructions,
		ValidUntil:    req.ValidUntil,
	}, req.Medications)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, prescription)
}

// Get returns one prescription by id
func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prescription, err := h.prescriptionService.GetPrescription(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, prescription)
}

// ListByPatient returns a patient's prescriptions, newest first
func (h *PrescriptionHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}

	prescriptions, err := h.prescriptionService.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, prescriptions)
}

// ListByDoctor returns the prescriptions a doctor has issued
func (h *PrescriptionHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}

	prescriptions, err := h.prescriptionService.ListByDoctor(doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, prescriptions)
}

type UpdatePrescriptionRequest struct {
	Status string `json:"status" binding:"required,oneof=active completed cancelled"`
}

// UpdateStatus completes or cancels an active prescription
func (h *PrescriptionHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	prescription, err := h.prescriptionService.UpdateStatus(id, models.PrescriptionStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, prescription)
}
