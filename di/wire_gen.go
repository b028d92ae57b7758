// Injector for the provider sets in wire.go, kept in wire's output layout.
// Running `go generate ./di` replaces it with the generated version.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"guestlist/config"
	"guestlist/infras/jwt"
	"guestlist/infras/mailer"
	"guestlist/infras/otel"
	"guestlist/infras/postgres"
	"guestlist/infras/redis"
	"guestlist/infras/s3"
	service2 "guestlist/internal/domains/auth/service"
	"guestlist/internal/domains/invitation/document"
	service3 "guestlist/internal/domains/invitation/service"
	"guestlist/internal/domains/rsvp/repository"
	"guestlist/internal/domains/rsvp/service"
	"guestlist/internal/handlers/auth"
	"guestlist/internal/handlers/invitation"
	"guestlist/internal/handlers/rsvp"
	"guestlist/permissions"
	"guestlist/shared/cache"
	"guestlist/transport/http"
	"guestlist/transport/http/middleware"
	"guestlist/transport/http/router"

	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() (*http.HTTP, error) {
	configConfig := config.Get()
	connection, err := postgres.New(configConfig)
	if err != nil {
		return nil, err
	}
	otelOtel := otel.New(configConfig)
	guestResponse := repository.New(connection, otelOtel)
	client, err := redis.New(configConfig)
	if err != nil {
		return nil, err
	}
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceGuestResponse := service.New(guestResponse, configConfig, redisCache, otelOtel)
	handler := rsvp.New(serviceGuestResponse, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service2.New(configConfig, redisCache, otelOtel, jwtJWT)
	authHandler := auth.New(serviceAuth, otelOtel, configConfig)
	renderer := document.NewRenderer()
	mailerMailer := mailer.New(configConfig, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceInvitation := service3.New(guestResponse, renderer, mailerMailer, s3S3, configConfig, otelOtel)
	invitationHandler := invitation.New(serviceInvitation, otelOtel)
	domainHandlers := router.DomainHandlers{
		RSVP:       handler,
		Auth:       authHandler,
		Invitation: invitationHandler,
	}
	permissionData := permissions.Get()
	middlewareAuth := middleware.NewAuthMiddleware(serviceAuth, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, middlewareAuth)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP, nil
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, mailer.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var rsvpDomain = wire.NewSet(repository.New, service.New)

var authDomain = wire.NewSet(service2.New)

var invitationDomain = wire.NewSet(document.NewRenderer, service3.New)

var domains = wire.NewSet(
	rsvpDomain,
	authDomain,
	invitationDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), rsvp.New, auth.New, invitation.New, router.New)
