package handler

import (
	"encoding/json"
	"net/http"

	"easymed-backend/internal/models"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

type CreateDoctorRequest struct {
	UserID              uint            `json:"userId" binding:"required"`
	MedicalCouncilID    string          `json:"medicalCouncilId" binding:"required"`
	Specialization      string          `json:"specialization" binding:"required"`
	Qualifications      string          `json:"qualifications" binding:"required"`
	Experience          int             `json:"experience"`
	ConsultationFee     float64         `json:"consultationFee"`
	HospitalAffiliation string          `json:"hospitalAffiliation"`
	AvailableSlots      json.RawMessage `json:"availableSlots"`
}

// Create registers a doctor profile
func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	doctor, err := h.doctorService.CreateDoctor(&models.Doctor{
		UserID:              req.UserID,
		MedicalCouncilID:    req.MedicalCouncilID,
		Specialization:      req.Specialization,
		Qualifications:      req.Qualifications,
		Experience:          req.Experience,
		ConsultationFee:     req.ConsultationFee,
		HospitalAffiliation: req.HospitalAffiliation,
		AvailableSlots:      []byte(req.AvailableSlots),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, doctor)
}

// Get returns one doctor by id
func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doctor, err := h.doctorService.GetDoctor(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// List returns all registered doctors
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctorService.ListDoctors()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, doctors)
}

type UpdateAvailabilityRequest struct {
	AvailableSlots json.RawMessage `json:"availableSlots" binding:"required"`
}

// UpdateAvailability replaces a doctor's published slots
func (h *DoctorHandler) UpdateAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	doctor, err := h.doctorService.UpdateAvailability(id, []byte(req.AvailableSlots))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}
