package controllers

import (
	"context"
	"net/http"
	"sync"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ContentController struct {
	Log            *zap.Logger
	ContentUsecase contracts.ContentUsecase
}

var (
	contentControllerInstance *ContentController
	onceContentController     sync.Once
)

func NewContentController(logger *zap.Logger, contentUsecase contracts.ContentUsecase) *ContentController {
	onceContentController.Do(func() {
		instance := &ContentController{
			Log:            logger,
			ContentUsecase: contentUsecase,
		}
		contentControllerInstance = instance
	})
	return contentControllerInstance
}

func (ctrl *ContentController) GetFAQ(w http.ResponseWriter, r *http.Request) {
	ctrl.serve(w, r, "ContentController.GetFAQ", func(ctx context.Context) (interface{}, error) {
		return ctrl.ContentUsecase.GetFAQ(ctx)
	})
}

func (ctrl *ContentController) GetAudience(w http.ResponseWriter, r *http.Request) {
	ctrl.serve(w, r, "ContentController.GetAudience", func(ctx context.Context) (interface{}, error) {
		return ctrl.ContentUsecase.GetAudience(ctx)
	})
}

func (ctrl *ContentController) GetAbout(w http.ResponseWriter, r *http.Request) {
	ctrl.serve(w, r, "ContentController.GetAbout", func(ctx context.Context) (interface{}, error) {
		return ctrl.ContentUsecase.GetAbout(ctx)
	})
}

func (ctrl *ContentController) serve(w http.ResponseWriter, r *http.Request, caller string, load func(ctx context.Context) (interface{}, error)) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := load(ctx)
	if err != nil {
		ctrl.Log.Error(caller+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}
