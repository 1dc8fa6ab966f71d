package handlers

import (
	"errors"
	"strconv"

	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service errors onto the response envelope.
// Policy violations become 403, missing rows 404, everything else 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotParticipant),
		errors.Is(err, services.ErrNotCreator),
		errors.Is(err, services.ErrNotAuthor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "not found")
	default:
		response.ServerError(c, err.Error())
	}
}
