package handler

import (
	"net/http"

	"easymed-backend/internal/models"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	claimService *service.ClaimService
}

func NewClaimHandler(claimService *service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

type SubmitClaimRequest struct {
	PatientID     uint    `json:"patientId" binding:"required"`
	AppointmentID *uint   `json:"appointmentId"`
	LabTestID     *uint   `json:"labTestId"`
	ClaimAmount   float64 `json:"claimAmount" binding:"required,gt=0"`
	Notes         string  `json:"notes"`
}

// Submit files an insurance claim and mints its claim number
func (h *ClaimHandler) Submit(c *gin.Context) {
	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	claim, err := h.claimService.SubmitClaim(&models.InsuranceClaim{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		LabTestID:     req.LabTestID,
		ClaimAmount:   req.ClaimAmount,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, claim)
}

// Get returns one claim by id
func (h *ClaimHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	claim, err := h.claimService.GetClaim(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, claim)
}

// ListByPatient returns a patient's claims, newest first
func (h *ClaimHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}

	claims, err := h.claimService.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, claims)
}

type AdjudicateClaimRequest struct {
	Status         string   `json:"status" binding:"required,oneof=processing approved rejected"`
	ApprovedAmount *float64 `json:"approvedAmount"`
	Notes          string   `json:"notes"`
}

// Adjudicate moves a claim through its lifecycle
func (h *ClaimHandler) Adjudicate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdjudicateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	claim, err := h.claimService.Adjudicate(id, models.ClaimStatus(req.Status), req.ApprovedAmount, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, claim)
}
