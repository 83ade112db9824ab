package models

import (
	"time"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/utils"
)

type Booking struct {
	ID          int64
	SlotID      int64
	Status      string
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	CreatedAt   time.Time
}

func (b Booking) ConvertIntoResponse(slot Slot, loc *time.Location) responses.Booking {
	return responses.Booking{
		ID:          b.ID,
		SlotID:      b.SlotID,
		Status:      b.Status,
		Date:        utils.FormatLocalDate(slot.StartAt, loc),
		Time:        utils.FormatLocalClock(slot.StartAt, loc),
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		ClientPhone: b.ClientPhone,
		CreatedAt:   b.CreatedAt.UTC(),
	}
}
