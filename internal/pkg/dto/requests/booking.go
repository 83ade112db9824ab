package requests

import "strings"

type CreateBooking struct {
	Date  string  `json:"date" validate:"required"`
	Time  string  `json:"time" validate:"required"`
	Name  *string `json:"name" validate:"omitempty,max=120"`
	Email *string `json:"email" validate:"omitempty,email,max=254"`
	Phone *string `json:"phone" validate:"omitempty,contact_phone"`
}

func (r *CreateBooking) Sanitize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Name = TrimOptional(r.Name)
	r.Email = TrimOptional(r.Email)
	if r.Email != nil {
		lowered := strings.ToLower(*r.Email)
		r.Email = &lowered
	}
	r.Phone = TrimOptional(r.Phone)
}
