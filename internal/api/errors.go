package api

import (
	"errors"
	"net/http"

	"fitbuddy/server/internal/repository"
	"fitbuddy/server/internal/service"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps service-layer failures onto HTTP responses.
// Every failure becomes a typed JSON body; nothing propagates as a raw
// fault. A store outage degrades to 503 on any endpoint and the process
// keeps serving.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrDayNotFound),
		errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrToggleConflict):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidContentType):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, "Database not connected. Please try again later.")
	default:
		abortWithError(c, http.StatusInternalServerError, "Server error")
	}
}
