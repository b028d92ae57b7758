package s3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guestlist/config"
	"guestlist/infras/otel/mocks"
	"guestlist/infras/s3"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/invitations/1.pdf", s3.PublicURL("https://cdn.example.com/", "invitations/1.pdf"))
	assert.Equal(t, "https://cdn.example.com/invitations/1.pdf", s3.PublicURL("https://cdn.example.com", "invitations/1.pdf"))
}

func TestEnabled(t *testing.T) {
	cfg := &config.Config{}
	assert.False(t, s3.New(cfg, mocks.NewOtel()).Enabled())

	cfg.External.S3.Enable = true
	assert.True(t, s3.New(cfg, mocks.NewOtel()).Enabled())
}
