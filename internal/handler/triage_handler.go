package handler

import (
	"net/http"

	"easymed-backend/internal/models"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TriageHandler struct {
	triageService *service.TriageService
}

func NewTriageHandler(triageService *service.TriageService) *TriageHandler {
	return &TriageHandler{triageService: triageService}
}

type AnalyzeRequest struct {
	PatientID      *uint    `json:"patientId"`
	Symptoms       []string `json:"symptoms" binding:"required,min=1"`
	Duration       string   `json:"duration"`
	Severity       string   `json:"severity"`
	RiskFactors    []string `json:"riskFactors"`
	AdditionalInfo string   `json:"additionalInfo"`
	Language       string   `json:"language" binding:"omitempty,oneof=english hindi tamil telugu"`
}

// Analyze runs symptom triage and stores the consultation. The
// response is always 201 with a complete analysis: upstream failures
// surface as the conservative fallback, never as an error status.
func (h *TriageHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.triageService.Analyze(c.Request.Context(), service.TriageInput{
		PatientID:      req.PatientID,
		Symptoms:       req.Symptoms,
		Duration:       req.Duration,
		Severity:       req.Severity,
		RiskFactors:    req.RiskFactors,
		AdditionalInfo: req.AdditionalInfo,
		Language:       req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Get returns one stored consultation by id
func (h *TriageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	consultation, err := h.triageService.GetConsultation(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, consultation)
}

// ListByPatient returns a patient's consultations, newest first
func (h *TriageHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}

	consultations, err := h.triageService.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, consultations)
}

type ReviewRequest struct {
	DoctorReview string `json:"doctorReview" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=reviewed dismissed"`
}

// Review records a doctor's review of a consultation
func (h *TriageHandler) Review(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	consultation, err := h.triageService.Review(id, req.DoctorReview, models.ConsultationStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, consultation)
}

type InsightsRequest struct {
	Symptoms       []string `json:"symptoms" binding:"required,min=1"`
	PatientHistory string   `json:"patientHistory"`
}

// Insights returns short wellness recommendations
func (h *TriageHandler) Insights(c *gin.Context) {
	var req InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	insights, err := h.triageService.Insights(c.Request.Context(), req.Symptoms, req.PatientHistory)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"insights": insights})
}
