package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"guestlist/config"
	"guestlist/infras/otel"
	"guestlist/shared/constant"
	"net"
	"net/smtp"

	"github.com/domodwyer/mailyak/v3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrRecipient = "mail.recipient"
	otelAttrSubject   = "mail.subject"
)

var ErrNotConfigured = errors.New("smtp host is not configured")

// Message is a multipart email with an HTML body and its plain text alternative.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Plain   string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type mailerImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		cfg:  cfg,
		otel: otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, msg Message) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: msg.To,
		otelAttrSubject:   msg.Subject,
	})

	smtpCfg := m.cfg.External.SMTP
	if smtpCfg.Host == "" {
		return ErrNotConfigured
	}

	mail := build(mailyak.New(net.JoinHostPort(smtpCfg.Host, smtpCfg.Port), m.auth()), smtpCfg.FromAddress, smtpCfg.FromName, msg)

	if err = mail.Send(); err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")

	return nil
}

// auth returns nil for relays that accept unauthenticated mail.
func (m *mailerImpl) auth() smtp.Auth {
	smtpCfg := m.cfg.External.SMTP
	if smtpCfg.Username == "" {
		return nil
	}

	return smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
}

func build(mail *mailyak.MailYak, fromAddress, fromName string, msg Message) *mailyak.MailYak {
	mail.From(fromAddress)
	mail.FromName(fromName)
	mail.To(msg.To)
	mail.Subject(msg.Subject)
	mail.HTML().Set(msg.HTML)
	mail.Plain().Set(msg.Plain)

	return mail
}
