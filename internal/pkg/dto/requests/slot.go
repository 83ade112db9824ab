package requests

import "strings"

// CreateSlot.Duration is in minutes, at most one week.
type CreateSlot struct {
	Date     string      `json:"date" validate:"required"`
	Time     string      `json:"time" validate:"required"`
	Duration FlexibleInt `json:"duration" validate:"gt=0,lte=10080"`
}

func (r *CreateSlot) Sanitize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
}

// SlotRange carries the raw from/to query values; blank means "not given".
type SlotRange struct {
	From string `json:"from" validate:"omitempty,local_date"`
	To   string `json:"to" validate:"omitempty,local_date"`
}

func (r *SlotRange) Sanitize() {
	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)
}
