package dto

import (
	"guestlist/infras/jwt"
	"guestlist/internal/domains/auth/model"
	"time"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed session token. The handler moves it into the cookie.
type LoginResponse struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
	UserResponse
}

func (l *LoginResponse) FromSessionToken(token jwt.SessionToken, session model.Session) {
	l.Token = token.Token
	l.ExpiresAt = token.ExpiresAt
	l.UserResponse.FromSession(session)
}

type UserResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

func (u *UserResponse) FromSession(session model.Session) {
	u.Authenticated = session.ID != ""
	u.Username = session.Username
}
