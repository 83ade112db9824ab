package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	SlotRepository    contracts.SlotRepository
	SlotUsecase       contracts.SlotUsecase
	MailerService     contracts.MailerService
	InternalConfig    *config.InternalConfig
	Location          *time.Location
	Log               *zap.Logger
	now               func() time.Time
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
	bookingUsecaseError    error
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	slotRepository contracts.SlotRepository,
	slotUsecase contracts.SlotUsecase,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.BookingUsecase, error) {
	onceBookingUsecase.Do(func() {
		instance, err := newBookingUsecase(bookingRepository, slotRepository, slotUsecase, mailerService, internalConfig, logger)
		if err != nil {
			bookingUsecaseError = err
			return
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance, bookingUsecaseError
}

func newBookingUsecase(
	bookingRepository contracts.BookingRepository,
	slotRepository contracts.SlotRepository,
	slotUsecase contracts.SlotUsecase,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (*bookingUsecase, error) {
	location, err := internalConfig.Location()
	if err != nil {
		return nil, err
	}
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		SlotRepository:    slotRepository,
		SlotUsecase:       slotUsecase,
		MailerService:     mailerService,
		InternalConfig:    internalConfig,
		Location:          location,
		Log:               logger,
		now:               time.Now,
	}, nil
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingCreated, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.Sanitize()
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err, bookingValidationMessage(err))
	}

	startAt, err := utils.ParseLocalDateTime(request.Date, request.Time, uc.Location)
	if err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking invalid date or time",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidDateOrTime(err)
	}

	slot, err := uc.SlotRepository.FindByStart(ctx, startAt)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error from SlotRepository.FindByStart",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(fmt.Errorf("no slot starts at %s", startAt.Format(time.RFC3339)))
	}
	if slot.StartAt.Before(uc.now()) {
		return nil, exceptions.ErrSlotInPast(fmt.Errorf("slot %d started at %s", slot.ID, slot.StartAt.Format(time.RFC3339)))
	}

	booking, err := uc.BookingRepository.Create(ctx, &models.Booking{
		SlotID:      slot.ID,
		Status:      constvars.BookingStatusConfirmed,
		ClientName:  request.Name,
		ClientEmail: request.Email,
		ClientPhone: request.Phone,
	})
	if err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking error from BookingRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSlotIDKey, slot.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.invalidate(ctx, "bookingUsecase.CreateBooking")
	uc.notify(ctx, *slot, booking)

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, booking.ID),
		zap.Int64(constvars.LoggingSlotIDKey, slot.ID),
	)
	return &responses.BookingCreated{
		OK:      true,
		Booking: booking.ConvertIntoResponse(*slot, uc.Location),
	}, nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, bookingID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	found, err := uc.BookingRepository.Delete(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.CancelBooking error from BookingRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !found {
		return exceptions.ErrBookingNotFound(fmt.Errorf("booking %d does not exist", bookingID))
	}

	uc.invalidate(ctx, "bookingUsecase.CancelBooking")

	uc.Log.Info("bookingUsecase.CancelBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)
	return nil
}

func (uc *bookingUsecase) invalidate(ctx context.Context, caller string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := uc.SlotUsecase.InvalidateAvailability(ctx); err != nil {
		uc.Log.Warn(caller+" error invalidating availability cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// notify queues the owner e-mail; a broken queue never fails a booking.
func (uc *bookingUsecase) notify(ctx context.Context, slot models.Slot, booking *models.Booking) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	to := uc.InternalConfig.Booking.NotifyEmail
	if to == "" || uc.MailerService == nil {
		return
	}

	date := utils.FormatLocalDate(slot.StartAt, uc.Location)
	clock := utils.FormatLocalClock(slot.StartAt, uc.Location)
	payload := &requests.EmailPayload{
		To:      to,
		Subject: fmt.Sprintf(constvars.EmailBookingSubjectFormat, date, clock),
		Body:    bookingNotificationBody(date, clock, booking),
	}
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("bookingUsecase.notify error from MailerService.SendEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}
}

func bookingNotificationBody(date, clock string, booking *models.Booking) string {
	var body strings.Builder
	fmt.Fprintf(&body, "Termin: %s %s\n", date, clock)
	fmt.Fprintf(&body, "Imię i nazwisko: %s\n", valueOrDash(booking.ClientName))
	fmt.Fprintf(&body, "E-mail: %s\n", valueOrDash(booking.ClientEmail))
	fmt.Fprintf(&body, "Telefon: %s\n", valueOrDash(booking.ClientPhone))
	return body.String()
}

func valueOrDash(value *string) string {
	if value == nil {
		return "-"
	}
	return *value
}

// bookingValidationMessage keeps the fixed prompt for a missing date or time
// and describes the first failing contact field otherwise.
func bookingValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			if fieldErr.Field() == "date" || fieldErr.Field() == "time" {
				return constvars.ErrClientBookingInputInvalid
			}
		}
	}
	return exceptions.FormatFirstValidationError(err)
}
