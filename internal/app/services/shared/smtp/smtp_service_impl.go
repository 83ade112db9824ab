package smtp

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/drivers/mailer"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpService struct {
	Client   *mailer.SMTPClient
	Log      *zap.Logger
	sendMail sendMailFunc
}

func NewSmtpService(client *mailer.SMTPClient, logger *zap.Logger) contracts.SMTPService {
	return &smtpService{
		Client:   client,
		Log:      logger,
		sendMail: smtp.SendMail,
	}
}

func (svc *smtpService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("smtpService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailToKey, payload.To),
	)

	from := svc.Client.EmailSender
	subject := mime.QEncoding.Encode("utf-8", payload.Subject)
	msg := []byte(fmt.Sprintf(constvars.EmailBasicMessageFormat, payload.To, subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)

	err := svc.sendMail(addr, svc.Client.Auth, from, []string{payload.To}, msg)
	if err != nil {
		svc.Log.Error("smtpService.SendEmail error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	svc.Log.Info("smtpService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailToKey, payload.To),
	)
	return nil
}
