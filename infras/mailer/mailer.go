package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"crypto/tls"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type Mail struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
	Enabled() bool
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
	dialer *gomail.Dialer
}

func New(config *config.Config, otel otel.Otel) Mailer {
	smtp := config.SMTP

	dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	dialer.TLSConfig = &tls.Config{ServerName: smtp.Host, MinVersion: tls.VersionTLS12}

	return &mailerImpl{
		config: config,
		otel:   otel,
		dialer: dialer,
	}
}

func (m *mailerImpl) Enabled() bool {
	return m.config.SMTP.Host != constant.Empty && m.config.SMTP.From != constant.Empty
}

// Send dials per message. Notification volume is low and a long lived SMTP
// connection would need its own keepalive handling.
func (m *mailerImpl) Send(ctx context.Context, mail Mail) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("mail.subject", mail.Subject)

	if !m.Enabled() {
		log.Debug().Str("subject", mail.Subject).Msg("SMTP not configured, dropping mail")

		return nil
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.config.SMTP.From)
	message.SetHeader("To", mail.To)
	message.SetHeader("Subject", mail.Subject)
	message.SetBody("text/plain", mail.TextBody)

	if mail.HTMLBody != constant.Empty {
		message.AddAlternative("text/html", mail.HTMLBody)
	}

	if err = m.dialer.DialAndSend(message); err != nil {
		log.Error().Err(err).Str("subject", mail.Subject).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("subject", mail.Subject).Msg("mail sent")

	return nil
}
