package smtp

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"valivio-service/internal/app/drivers/mailer"
	"valivio-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSmtpServiceSendEmail(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  string
	)
	svc := &smtpService{
		Client: &mailer.SMTPClient{Host: "mail.valivio.pl", Port: 587, EmailSender: "no-reply@valivio.pl"},
		Log:    zap.NewNop(),
		sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
			return nil
		},
	}

	err := svc.SendEmail(context.Background(), &requests.EmailPayload{
		To:      "owner@valivio.pl",
		Subject: "Nowa rezerwacja: 2025-03-01 09:00",
		Body:    "Klient: Jan",
	})

	require.NoError(t, err)
	assert.Equal(t, "mail.valivio.pl:587", gotAddr)
	assert.Equal(t, "no-reply@valivio.pl", gotFrom)
	assert.Equal(t, []string{"owner@valivio.pl"}, gotTo)
	assert.Contains(t, gotMsg, "To: owner@valivio.pl\r\n")
	assert.Contains(t, gotMsg, "Subject: Nowa rezerwacja: 2025-03-01 09:00\r\n")
	assert.Contains(t, gotMsg, "\r\n\r\nKlient: Jan\r\n")
}

func TestSmtpServiceSendEmailFailure(t *testing.T) {
	svc := &smtpService{
		Client: &mailer.SMTPClient{Host: "mail.valivio.pl", Port: 587},
		Log:    zap.NewNop(),
		sendMail: func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		},
	}

	err := svc.SendEmail(context.Background(), &requests.EmailPayload{To: "owner@valivio.pl"})

	assert.Error(t, err)
}
