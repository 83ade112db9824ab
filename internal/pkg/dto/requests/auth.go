package requests

import "strings"

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

func (r *Login) Sanitize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}
