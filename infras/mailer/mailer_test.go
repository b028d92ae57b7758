package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/domodwyer/mailyak/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestlist/config"
	"guestlist/infras/otel/mocks"
)

func TestBuild(t *testing.T) {
	mail := build(mailyak.New("localhost:25", nil), "hosts@example.com", "Les Dupont", Message{
		To:      "guest@example.com",
		Subject: "You are invited",
		HTML:    "<p>Hello</p>",
		Plain:   "Hello",
	})

	buf, err := mail.MimeBuf()
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Subject: You are invited")
	assert.Contains(t, raw, "guest@example.com")
	assert.Contains(t, raw, "hosts@example.com")
	assert.Contains(t, raw, "<p>Hello</p>")
	assert.True(t, strings.Contains(raw, "text/plain"))
}

func TestSend_NotConfigured(t *testing.T) {
	m := New(&config.Config{}, mocks.NewOtel())

	err := m.Send(context.Background(), Message{To: "guest@example.com"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAuth(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.SMTP.Host = "smtp.example.com"

	m := &mailerImpl{cfg: cfg}
	assert.Nil(t, m.auth())

	cfg.External.SMTP.Username = "mailer"
	cfg.External.SMTP.Password = "secret"
	assert.NotNil(t, m.auth())
}
