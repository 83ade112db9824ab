package models

import "valivio-service/internal/pkg/dto/responses"

type AdminUser struct {
	ID           int64
	Email        string
	PasswordHash string
	TimeModel
}

func (a AdminUser) ConvertIntoResponse() responses.Admin {
	return responses.Admin{
		ID:    a.ID,
		Email: a.Email,
	}
}
