package router

import (
	"guestlist/internal/handlers/auth"
	"guestlist/internal/handlers/invitation"
	"guestlist/internal/handlers/rsvp"
	"guestlist/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	RSVP       rsvp.Handler
	Auth       auth.Handler
	Invitation invitation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

// SetupRoutes mounts the API under /api behind the session gate.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Session)

		r.DomainHandlers.RSVP.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Invitation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
