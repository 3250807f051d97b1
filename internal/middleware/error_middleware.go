package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examscheduler/internal/app/models/dto"
	"github.com/yigit/examscheduler/internal/pkg/apperrors"
	"github.com/yigit/examscheduler/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var detail *dto.ErrorDetail
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		detail = resourceErrorDetail(err, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		status = http.StatusConflict
		detail = resourceErrorDetail(err, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while processing request")
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// resourceErrorDetail prefers the message carried by an apperrors.CustomError
// and reports its code as the reason.
func resourceErrorDetail(err error, code dto.ErrorCode, fallback string) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(code, fallback).WithSeverity(dto.ErrorSeverityWarning)

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		return detail
	}
	if custom.Message != "" {
		detail.Message = custom.Message
	}
	if custom.Code != "" {
		detail = detail.WithDetails(map[string]string{"reason": custom.Code})
	}
	return detail
}
