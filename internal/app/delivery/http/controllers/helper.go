package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// decodeBody treats an empty body as an empty object so that missing fields
// surface as validation errors rather than parse errors.
func decodeBody(r *http.Request, dst interface{}) error {
	err := utils.DecodeJSONBody(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return nil
	}
	return exceptions.ErrCannotParseJSON(err)
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
