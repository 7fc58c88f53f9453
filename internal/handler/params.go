package handler

import (
	"net/http"
	"strconv"

	"easymed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter, responding 400
// itself when the value is malformed.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || value == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(value), true
}
