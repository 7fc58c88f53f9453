package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"easymed-backend/internal/models"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

type CreatePatientRequest struct {
	UserID            uint            `json:"userId" binding:"required"`
	AadhaarNumber     *string         `json:"aadhaarNumber"`
	DateOfBirth       *time.Time      `json:"dateOfBirth"`
	Gender            string          `json:"gender"`
	BloodGroup        string          `json:"bloodGroup"`
	EmergencyContact  string          `json:"emergencyContact"`
	Address           string          `json:"address"`
	InsuranceProvider string          `json:"insuranceProvider"`
	InsuranceNumber   string          `json:"insuranceNumber"`
	MedicalHistory    json.RawMessage `json:"medicalHistory"`
	Allergies         string          `json:"allergies"`
}

// Create registers a patient profile. The verification flag always
// starts false; only the verify endpoint can raise it.
func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	patient, err := h.patientService.CreatePatient(&models.Patient{
		UserID:            req.UserID,
		AadhaarNumber:     req.AadhaarNumber,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		BloodGroup:        req.BloodGroup,
		EmergencyContact:  req.EmergencyContact,
		Address:           req.Address,
		InsuranceProvider: req.InsuranceProvider,
		InsuranceNumber:   req.InsuranceNumber,
		MedicalHistory:    []byte(req.MedicalHistory),
		Allergies:         req.Allergies,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, patient)
}

// Get returns one patient by id
func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	patient, err := h.patientService.GetPatient(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// List returns all patients
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.patientService.ListPatients()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patients)
}

// Update applies a partial profile update
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.Patient
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	patient, err := h.patientService.UpdatePatient(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

type VerifyAadhaarRequest struct {
	PatientID     uint   `json:"patientId" binding:"required"`
	AadhaarNumber string `json:"aadhaarNumber" binding:"required"`
}

// VerifyAadhaar runs the 12-digit format check and marks the patient
// verified on success. A malformed number leaves the record unchanged.
func (h *PatientHandler) VerifyAadhaar(c *gin.Context) {
	var req VerifyAadhaarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "verified": false, "error": "Invalid request body"})
		return
	}

	patient, err := h.patientService.VerifyAadhaar(req.PatientID, req.AadhaarNumber)
	if err != nil {
		if service.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "verified": false, "error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "verified": true, "data": patient})
}
