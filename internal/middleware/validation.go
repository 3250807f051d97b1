package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/examscheduler/internal/app/models/dto"
)

// RespondBindingError writes a 400 for a request that failed to bind or validate.
func RespondBindingError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")

	var validationErrors validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &validationErrors):
		errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(FormatValidationErrors(validationErrors))
		if len(validationErrors) == 1 {
			errorDetail = errorDetail.WithField(jsonFieldName(validationErrors[0].Field()))
		}
	case errors.As(err, &syntaxErr):
		errorDetail = errorDetail.WithDetails("malformed JSON body")
	default:
		errorDetail = errorDetail.WithDetails(err.Error())
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// FormatValidationErrors converts validator errors into field-level details
func FormatValidationErrors(errs validator.ValidationErrors) []dto.FieldError {
	fields := make([]dto.FieldError, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, dto.FieldError{
			Field:   jsonFieldName(e.Field()),
			Message: formatValidationError(e),
		})
	}
	return fields
}

// jsonFieldName lowers the first letter so names match the JSON body
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " cannot be blank"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	default:
		return field + " validation failed: " + e.Tag()
	}
}
