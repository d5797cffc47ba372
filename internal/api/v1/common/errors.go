// Package common holds helpers shared by the v1 handlers.
package common

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/utils"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, services.ErrPromptNotFound),
		errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrModelNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDefaultModelDelete):
		return http.StatusConflict
	case errors.Is(err, services.ErrNoDefaultModel),
		errors.Is(err, services.ErrEmptyGeneration),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAuthDisabled):
		return http.StatusForbidden
	case errors.Is(err, services.ErrCacheDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// RespondError writes err in the response envelope. Internal errors are
// logged with the request id.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.Error("Request failed",
			zap.String("request_id", c.GetString("RequestID")),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(status, utils.NewErrorResponse(status, err.Error()))
}

// ParseID reads the numeric :id path parameter, writing a 400 when it is
// malformed.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return 0, false
	}
	return uint(id), true
}
