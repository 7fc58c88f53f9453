package handler

import (
	"net/http"

	"easymed-backend/internal/voice"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// VoiceHandler resolves transcribed utterances to navigation and
// emergency intents. Resolution is pure table lookup, so the handler
// calls the resolver directly with no service in between.
type VoiceHandler struct{}

func NewVoiceHandler() *VoiceHandler {
	return &VoiceHandler{}
}

type VoiceCommandRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Language   string `json:"language" binding:"omitempty,oneof=english hindi tamil telugu"`
	Context    string `json:"context"`
}

// Resolve matches a transcript against the phrase table for its
// language. An unrecognized transcript is a 200 with the
// not-understood message, not an error.
func (h *VoiceHandler) Resolve(c *gin.Context) {
	var req VoiceCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Language == "" {
		req.Language = voice.LanguageEnglish
	}

	result := voice.Resolve(req.Transcript, req.Language)
	if !result.Recognized {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": result.Response})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"intent":   result.Intent,
		"response": result.Response,
	})
}

type EmergencyRequest struct {
	Language string `json:"language" binding:"omitempty,oneof=english hindi tamil telugu"`
	Location string `json:"location"`
}

// Emergency returns the canned 108 announcement for the requested
// language
func (h *VoiceHandler) Emergency(c *gin.Context) {
	var req EmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Language == "" {
		req.Language = voice.LanguageEnglish
	}

	utils.SuccessResponse(c, gin.H{
		"emergencyNumber": voice.EmergencyTarget,
		"response":        voice.EmergencyResponse(req.Language),
	})
}
