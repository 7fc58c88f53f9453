package handler

import (
	"encoding/json"
	"net/http"

	"easymed-backend/internal/models"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	recordService *service.RecordService
}

func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

type CreateRecordRequest struct {
	PatientID      uint            `json:"patientId" binding:"required"`
	DoctorID       uint            `json:"doctorId" binding:"required"`
	AppointmentID  *uint           `json:"appointmentId"`
	RecordType     string          `json:"recordType" binding:"required,oneof=consultation diagnosis treatment lab_result"`
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	Diagnosis      string          `json:"diagnosis"`
	Treatment      string          `json:"treatment"`
	Attachments    json.RawMessage `json:"attachments"`
	IsConfidential bool            `json:"isConfidential"`
}

// Create appends a medical record to a patient's history
func (h *RecordHandler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.recordService.CreateRecord(&models.MedicalRecord{
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		AppointmentID:  req.AppointmentID,
		RecordType:     req.RecordType,
		Title:          req.Title,
		Description:    req.Description,
		Diagnosis:      req.Diagnosis,
		Treatment:      req.Treatment,
		Attachments:    []byte(req.Attachments),
		IsConfidential: req.IsConfidential,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, record)
}

// Get returns one medical record by id
func (h *RecordHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.recordService.GetRecord(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, record)
}

// ListByPatient returns a patient's history, newest first
func (h *RecordHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}

	records, err := h.recordService.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, records)
}

// ListByDoctor returns the records a doctor has authored
func (h *RecordHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}

	records, err := h.recordService.ListByDoctor(doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, records)
}

type AmendRecordRequest struct {
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
}

// Amend appends diagnosis or treatment detail to an existing record
func (h *RecordHandler) Amend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AmendRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.recordService.AmendRecord(id, req.Diagnosis, req.Treatment)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, record)
}
