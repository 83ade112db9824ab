package utils

import (
	"context"
	"errors"
	"net/http"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		if errors.Is(err, context.DeadlineExceeded) {
			customErr = exceptions.ErrServerDeadlineExceeded(err)
		} else {
			customErr = exceptions.ErrServerProcess(err)
		}
	}

	fields := []zap.Field{
		zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
		zap.String(constvars.LoggingErrorCodeKey, customErr.ErrorCode),
		zap.Error(customErr.Err),
	}
	for _, location := range customErr.Locations {
		fields = append(fields, zap.Any(constvars.LoggingLocationKey, location))
	}
	if customErr.StatusCode >= constvars.StatusInternalServerError {
		log.Error(customErr.DevMessage, fields...)
	} else {
		log.Warn(customErr.DevMessage, fields...)
	}

	response := exceptions.CustomError{
		ErrorCode:     customErr.ErrorCode,
		ClientMessage: customErr.ClientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.Error()
		response.Locations = customErr.Locations
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(customErr.StatusCode)
	json.NewEncoder(w).Encode(response)
}
