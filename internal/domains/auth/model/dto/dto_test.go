package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"guestlist/infras/jwt"
	"guestlist/internal/domains/auth/model"
	"guestlist/internal/domains/auth/model/dto"
)

func TestLoginResponse_FromSessionToken(t *testing.T) {
	expiresAt := time.Date(2026, 3, 19, 18, 0, 0, 0, time.UTC)

	var response dto.LoginResponse
	response.FromSessionToken(
		jwt.SessionToken{Token: "signed-token", ExpiresAt: expiresAt},
		model.Session{ID: "session-id", Username: "admin"},
	)

	assert.Equal(t, "signed-token", response.Token)
	assert.Equal(t, expiresAt, response.ExpiresAt)
	assert.True(t, response.Authenticated)
	assert.Equal(t, "admin", response.Username)
}

func TestUserResponse_FromSession(t *testing.T) {
	var response dto.UserResponse
	response.FromSession(model.Session{})

	assert.False(t, response.Authenticated)
	assert.Empty(t, response.Username)
}
