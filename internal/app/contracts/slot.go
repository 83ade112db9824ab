package contracts

import (
	"context"
	"time"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	CreateSlot(ctx context.Context, request *requests.CreateSlot) (*responses.SlotCreated, error)
	DeleteSlot(ctx context.Context, slotID int64) error
	ListSlots(ctx context.Context, request *requests.SlotRange) (*responses.AdminSlotList, error)
	ListAvailable(ctx context.Context, request *requests.SlotRange) (*responses.AvailableSlots, error)
	PurgePastSlots(ctx context.Context, cutoff time.Time) (int64, error)
	InvalidateAvailability(ctx context.Context) error
}

type SlotRepository interface {
	Create(ctx context.Context, slot *models.Slot) (*models.Slot, error)
	Delete(ctx context.Context, slotID int64) (bool, error)
	FindByStart(ctx context.Context, startAt time.Time) (*models.Slot, error)
	FindAvailable(ctx context.Context, from, to, now time.Time) ([]models.Slot, error)
	FindAllWithBookings(ctx context.Context, from, to time.Time) ([]models.SlotWithBooking, error)
	DeletePastUnbooked(ctx context.Context, cutoff time.Time) (int64, error)
}
