package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"guestlist/config"
	"guestlist/shared/constant"
	"guestlist/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingToken = errors.New("authorization token is required")
)

const bearerPrefix = "Bearer "

// Claims is the payload of a session token. The session itself lives server side; the token only points at it.
type Claims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// SessionToken is a signed token together with its expiry.
type SessionToken struct {
	Token     string
	ExpiresAt time.Time
}

type JWT interface {
	Generate(sessionID, username string) (SessionToken, error)
	Validate(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// Generate signs an HS256 token for sessionID that expires with the session.
func (s *Service) Generate(sessionID, username string) (SessionToken, error) {
	now := timezone.Now()
	expiresAt := now.Add(s.ttl())

	claims := Claims{
		SessionID: sessionID,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			Subject:   username,
			ID:        sessionID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return SessionToken{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return SessionToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Validate parses tokenString and checks signature, expiry and the session id claim.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.Session.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.SessionID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) ttl() time.Duration {
	return time.Duration(s.config.Session.TTLMinutes) * time.Minute
}

// ExtractTokenFromHeader returns the token of an "Authorization: Bearer <token>" header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", fmt.Errorf("%w: header must start with %q", ErrInvalidToken, strings.TrimSpace(bearerPrefix))
	}

	return strings.TrimSpace(authHeader[len(bearerPrefix):]), nil
}

// TTLSeconds is the session lifetime in seconds, used for the redis expiry and the cookie max age.
func TTLSeconds(cfg *config.Config) int {
	return cfg.Session.TTLMinutes * constant.MinutesToSeconds
}
