package controllers

import (
	"context"
	"net/http"
	"sync"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type SlotController struct {
	Log         *zap.Logger
	SlotUsecase contracts.SlotUsecase
}

var (
	slotControllerInstance *SlotController
	onceSlotController     sync.Once
)

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase) *SlotController {
	onceSlotController.Do(func() {
		instance := &SlotController{
			Log:         logger,
			SlotUsecase: slotUsecase,
		}
		slotControllerInstance = instance
	})
	return slotControllerInstance
}

// ListAvailable serves the public calendar.
func (ctrl *SlotController) ListAvailable(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SlotController.ListAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	request := rangeFromQuery(r)
	result, err := ctrl.SlotUsecase.ListAvailable(ctx, request)
	if err != nil {
		ctrl.Log.Error("SlotController.ListAvailable error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SlotController.ListAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Slots)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *SlotController) ListSlots(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SlotController.ListSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SlotUsecase.ListSlots(ctx, rangeFromQuery(r))
	if err != nil {
		ctrl.Log.Error("SlotController.ListSlots error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *SlotController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SlotController.CreateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateSlot)
	if err := decodeBody(r, request); err != nil {
		ctrl.Log.Warn("SlotController.CreateSlot error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SlotUsecase.CreateSlot(ctx, request)
	if err != nil {
		ctrl.Log.Error("SlotController.CreateSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SlotController.CreateSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, result.Slot.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *SlotController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	slotID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}
	ctrl.Log.Info("SlotController.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSlotIDKey, slotID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.SlotUsecase.DeleteSlot(ctx, slotID); err != nil {
		ctrl.Log.Error("SlotController.DeleteSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.OK{OK: true})
}

func rangeFromQuery(r *http.Request) *requests.SlotRange {
	query := r.URL.Query()
	return &requests.SlotRange{
		From: query.Get(constvars.QueryParamFrom),
		To:   query.Get(constvars.QueryParamTo),
	}
}
