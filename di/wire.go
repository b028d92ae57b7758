//go:build wireinject
// +build wireinject

package di

import (
	"guestlist/config"
	"guestlist/infras/jwt"
	"guestlist/infras/mailer"
	"guestlist/infras/otel"
	"guestlist/infras/postgres"
	"guestlist/infras/redis"
	"guestlist/infras/s3"
	"guestlist/permissions"
	"guestlist/shared/cache"
	"guestlist/transport/http"
	"guestlist/transport/http/middleware"
	"guestlist/transport/http/router"

	authService "guestlist/internal/domains/auth/service"
	invitationDocument "guestlist/internal/domains/invitation/document"
	invitationService "guestlist/internal/domains/invitation/service"
	rsvpRepository "guestlist/internal/domains/rsvp/repository"
	rsvpService "guestlist/internal/domains/rsvp/service"
	authHandler "guestlist/internal/handlers/auth"
	invitationHandler "guestlist/internal/handlers/invitation"
	rsvpHandler "guestlist/internal/handlers/rsvp"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	mailer.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var rsvpDomain = wire.NewSet(
	rsvpRepository.New,
	rsvpService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var invitationDomain = wire.NewSet(
	invitationDocument.NewRenderer,
	invitationService.New,
)

var domains = wire.NewSet(
	rsvpDomain,
	authDomain,
	invitationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	rsvpHandler.New,
	authHandler.New,
	invitationHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
