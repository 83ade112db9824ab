package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"valivio-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int        `json:"-"`
	ErrorCode     string     `json:"error"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.DevMessage, e.Err.Error())
	}
	return e.DevMessage
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the location of whoever called the exported
// constructor (ErrXxx), so the stack skip accounts for that extra frame.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return buildCustomError(err, statusCode, errorCodeForStatus(statusCode), clientMessage, devMessage, 4)
}

func BuildNewCustomErrorWithCode(err error, statusCode int, errorCode, clientMessage, devMessage string) *CustomError {
	return buildCustomError(err, statusCode, errorCode, clientMessage, devMessage, 4)
}

func buildCustomError(err error, statusCode int, errorCode, clientMessage, devMessage string, skip int) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ErrorCode:     errorCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Err:           err,
	}

	var inner *CustomError
	if errors.As(err, &inner) {
		customErr.Locations = append(customErr.Locations, inner.Locations...)
	}
	customErr.Locations = append(customErr.Locations, getLocation(skip))
	return customErr
}

func errorCodeForStatus(statusCode int) string {
	switch statusCode {
	case constvars.StatusBadRequest:
		return constvars.ErrCodeBadRequest
	case constvars.StatusUnauthorized, constvars.StatusForbidden:
		return constvars.ErrCodeUnauthorized
	case constvars.StatusNotFound:
		return constvars.ErrCodeNotFound
	case constvars.StatusConflict:
		return constvars.ErrCodeDuplicate
	case constvars.StatusTooManyRequests:
		return constvars.ErrCodeTooManyRequests
	case constvars.StatusGatewayTimeout:
		return constvars.ErrCodeTimeout
	default:
		return constvars.ErrCodeServerError
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			FunctionName: "unknown",
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
