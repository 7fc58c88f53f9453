package handler

import (
	"errors"
	"net/http"

	"easymed-backend/internal/repository"
	"easymed-backend/internal/service"
	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response taxonomy:
// validation 400, bad credentials 401, missing record 404, anything
// else 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Resource not found")
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
