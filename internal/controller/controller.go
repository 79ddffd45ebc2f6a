// Package controller holds helpers shared by HTTP handlers
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"devagent-backend/internal/lifecycle"
	"devagent-backend/internal/middleware"
	"devagent-backend/internal/utilities"
)

// RespondError writes err as JSON error body with status derived from its kind
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, lifecycle.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, lifecycle.ErrInvalidInput):
		status = http.StatusBadRequest
	case utilities.IsUniqueViolation(err):
		status = http.StatusConflict
	case middleware.IsBodyTooLarge(err):
		status = http.StatusRequestEntityTooLarge
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, utilities.ErrorResponse{Error: err.Error()})
}

// BindJSON decodes request body into dst and responds 400 (or 413) on failure
func BindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if middleware.IsBodyTooLarge(err) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{Error: "Entity too large"})
			return false
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return false
	}
	return true
}

// ParseID reads numeric path parameter, responding 400 when it is malformed
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid %s", name),
		})
		return 0, false
	}
	return uint(id), true
}

// CurrentUserID returns ID of authenticated user, responding 401 if RequireAuth did not run
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return uuid.Nil, false
	}
	return user.ID, true
}
