package contracts

import (
	"context"
	"valivio-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}

type SMTPService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}
