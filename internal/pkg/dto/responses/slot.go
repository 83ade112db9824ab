package responses

import "time"

type Slot struct {
	ID       int64     `json:"id"`
	StartAt  time.Time `json:"startAt"`
	EndAt    time.Time `json:"endAt"`
	Capacity int       `json:"capacity"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Duration int       `json:"duration"`
}

type SlotCreated struct {
	OK   bool `json:"ok"`
	Slot Slot `json:"slot"`
}

// AvailableSlots maps a local date ("YYYY-MM-DD") to the sorted local start
// times ("HH:mm") still free on that day.
type AvailableSlots struct {
	Slots map[string][]string `json:"slots"`
}

type AdminSlot struct {
	Slot
	Booking *Booking `json:"booking"`
}

type AdminSlotList struct {
	OK    bool        `json:"ok"`
	Slots []AdminSlot `json:"slots"`
}
