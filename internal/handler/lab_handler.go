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

type LabHandler struct {
	labService *service.LabService
}

func NewLabHandler(labService *service.LabService) *LabHandler {
	return &LabHandler{labService: labService}
}

type CreateLabTestRequest struct {
	PatientID        uint       `json:"patientId" binding:"required"`
	DoctorID         uint       `json:"doctorId" binding:"required"`
	TestName         string     `json:"testName" binding:"required"`
	TestType         string     `json:"testType" binding:"required"`
	LabProvider      string     `json:"labProvider"`
	ScheduledDate    *time.Time `json:"scheduledDate"`
	Cost             float64    `json:"cost"`
	InsuranceCovered bool       `json:"insuranceCovered"`
}

// Create orders a lab test. All tests start at ordered with no results.
func (h *LabHandler) Create(c *gin.Context) {
	var req CreateLabTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	labTest, err := h.labService.CreateLabTest(&models.LabTest{
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		TestName:         req.TestName,
		TestType:         req.TestType,
		LabProvider:      req.LabProvider,
		ScheduledDate:    req.ScheduledDate,
		Cost:             req.Cost,
		InsuranceCovered: req.InsuranceCovered,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, labTest)
}

// Get returns one lab test by id
func (h *LabHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	labTest, err := h.labService.GetLabTest(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, labTest)
}

// ListByPatient returns a patient's lab tests, newest first
func (h *LabHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}

	labTests, err := h.labService.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, labTests)
}

// ListByDoctor returns the lab tests a doctor has ordered
func (h *LabHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}

	labTests, err := h.labService.ListByDoctor(doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, labTests)
}

// ListPendingByDoctor returns a doctor's tests that have not reached
// completed
func (h *LabHandler) ListPendingByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}

	labTests, err := h.labService.ListPendingByDoctor(doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, labTests)
}

type UpdateLabTestRequest struct {
	Status    *string         `json:"status" binding:"omitempty,oneof=ordered sample_collected in_progress completed"`
	Results   json.RawMessage `json:"results"`
	ReportURL *string         `json:"reportUrl"`
}

// Update advances a test through its lifecycle and attaches results at
// completion
func (h *LabHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateLabTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := service.LabTestUpdate{
		Results:   []byte(req.Results),
		ReportURL: req.ReportURL,
	}
	if req.Status != nil {
		status := models.LabTestStatus(*req.Status)
		update.Status = &status
	}

	labTest, err := h.labService.UpdateLabTest(id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, labTest)
}
