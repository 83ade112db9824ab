package exceptions

import (
	"errors"
	"strings"
	"valivio-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatAllValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return constvars.ErrClientCannotProcessRequest
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}
	return strings.Join(messages, ", ")
}

func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	return formatFieldError(validationErrors[0])
}

func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := strings.ToLower(fieldErr.Field())
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "jest nieprawidłowe"
	}
	if constvars.TagsWithParams[tag] {
		customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return fieldName + " " + customMessage
}
