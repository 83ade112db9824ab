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

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		instance := &BookingController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
		bookingControllerInstance = instance
	})
	return bookingControllerInstance
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateBooking)
	if err := decodeBody(r, request); err != nil {
		ctrl.Log.Warn("BookingController.CreateBooking error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, result.Booking.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bookingID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}
	ctrl.Log.Info("BookingController.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.BookingUsecase.CancelBooking(ctx, bookingID); err != nil {
		ctrl.Log.Error("BookingController.CancelBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.OK{OK: true})
}
