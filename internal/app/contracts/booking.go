package contracts

import (
	"context"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingCreated, error)
	CancelBooking(ctx context.Context, bookingID int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	Delete(ctx context.Context, bookingID int64) (bool, error)
}
