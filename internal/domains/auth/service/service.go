package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"guestlist/config"
	"guestlist/infras/jwt"
	"guestlist/infras/otel"
	"guestlist/internal/domains/auth/model"
	"guestlist/internal/domains/auth/model/dto"
	"guestlist/shared"
	"guestlist/shared/cache"
	"guestlist/shared/constant"
	"guestlist/shared/failure"
	"guestlist/shared/password"
	"guestlist/shared/timezone"
	"guestlist/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, token string) (model.Session, error)
}

type serviceImpl struct {
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

// Login checks the pair against the configured administrator and opens a server side session.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	usernameMatches := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Admin.Username)) == 1

	// the hash is always checked so a wrong username costs the same as a wrong password
	verifyErr := password.Verify(req.Password, s.cfg.Admin.PasswordHash)
	if verifyErr != nil && !errors.Is(verifyErr, password.ErrInvalidPassword) {
		log.Error().Err(verifyErr).Msg("failed to verify administrator password")

		return res, fmt.Errorf("failed to verify password: %w", verifyErr)
	}

	if !usernameMatches || verifyErr != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with invalid credentials")

		return res, failure.ErrInvalidCredentials
	}

	now := timezone.Now()
	session := model.Session{
		ID:        uuid.NewString(),
		Username:  s.cfg.Admin.Username,
		CreatedAt: now,
	}

	token, err := s.jwtService.Generate(session.ID, session.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return res, fmt.Errorf("failed to generate session token: %w", err)
	}

	session.ExpiresAt = token.ExpiresAt

	if err = s.cache.Save(ctx, sessionKey(session.ID), session, jwt.TTLSeconds(s.cfg)); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	res.FromSessionToken(token, session)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if sessionID == "" {
		return failure.ErrSessionRequired
	}

	if err = s.cache.Delete(ctx, sessionKey(sessionID)); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Authenticate resolves a session token to its live session. Missing, expired or revoked sessions
// all yield ErrSessionRequired.
func (s *serviceImpl) Authenticate(ctx context.Context, token string) (session model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()

	claims, err := s.jwtService.Validate(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")

		return session, failure.ErrSessionRequired
	}

	if err = s.cache.Get(ctx, sessionKey(claims.SessionID), &session); err != nil {
		if errors.Is(err, cache.Nil) {
			return session, failure.ErrSessionRequired
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load session")

		return session, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

func sessionKey(sessionID string) string {
	return shared.BuildCacheKey(model.SessionKeyPrefix, sessionID)
}
