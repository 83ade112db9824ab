package responses

import "time"

type Booking struct {
	ID          int64     `json:"id"`
	SlotID      int64     `json:"slotId"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ClientName  *string   `json:"name,omitempty"`
	ClientEmail *string   `json:"email,omitempty"`
	ClientPhone *string   `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingCreated struct {
	OK      bool    `json:"ok"`
	Booking Booking `json:"booking"`
}
