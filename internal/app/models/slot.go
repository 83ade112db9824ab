package models

import (
	"time"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/utils"
)

// Slot is a bookable interval. StartAt and EndAt are always UTC.
type Slot struct {
	ID        int64
	StartAt   time.Time
	EndAt     time.Time
	Capacity  int
	CreatedAt time.Time
}

func (s Slot) DurationMinutes() int {
	return int(s.EndAt.Sub(s.StartAt) / time.Minute)
}

func (s Slot) ConvertIntoResponse(loc *time.Location) responses.Slot {
	return responses.Slot{
		ID:       s.ID,
		StartAt:  s.StartAt.UTC(),
		EndAt:    s.EndAt.UTC(),
		Capacity: s.Capacity,
		Date:     utils.FormatLocalDate(s.StartAt, loc),
		Time:     utils.FormatLocalClock(s.StartAt, loc),
		Duration: s.DurationMinutes(),
	}
}

// SlotWithBooking is one row of the admin listing; Booking is nil for free slots.
type SlotWithBooking struct {
	Slot
	Booking *Booking
}

func (s SlotWithBooking) ConvertIntoResponse(loc *time.Location) responses.AdminSlot {
	response := responses.AdminSlot{
		Slot: s.Slot.ConvertIntoResponse(loc),
	}
	if s.Booking != nil {
		booking := s.Booking.ConvertIntoResponse(s.Slot, loc)
		response.Booking = &booking
	}
	return response
}
