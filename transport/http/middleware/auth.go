package middleware

import (
	"context"
	"guestlist/config"
	"guestlist/infras/jwt"
	"guestlist/infras/otel"
	"guestlist/internal/domains/auth/service"
	"guestlist/permissions"
	"guestlist/shared/constant"
	"guestlist/shared/failure"
	"guestlist/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth gates administrative routes behind a live session.
type Auth interface {
	Session(next http.Handler) http.Handler
}

type authImpl struct {
	authService service.Auth
	otel        otel.Otel
	permission  *permissions.PermissionData
	cfg         *config.Config
}

func NewAuthMiddleware(authService service.Auth, otel otel.Otel, permission *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		authService: authService,
		otel:        otel,
		permission:  permission,
		cfg:         cfg,
	}
}

// Session lets public routes through and requires a session token on every other one.
// The token is read from the session cookie first, then from an Authorization bearer header.
func (m *authImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		path := routePattern(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if m.permission != nil && m.permission.FindPermissions(path, request.Method).Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		token, err := m.token(request)
		if err != nil {
			err = failure.ErrSessionRequired

			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		session, err := m.authService.Authenticate(ctx, token)
		if err != nil {
			if failure.GetCode(err) != http.StatusUnauthorized {
				log.Error().Err(err).Msg("failed to authenticate session")
			}

			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(request.Context(), constant.ContextKeyUsername, session.Username)
		ctx = context.WithValue(ctx, constant.ContextKeySessionID, session.ID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) token(request *http.Request) (string, error) {
	if cookie, err := request.Cookie(m.cfg.SessionCookieName()); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == "" {
		return "", jwt.ErrMissingToken
	}

	return jwt.ExtractTokenFromHeader(authHeader) //nolint:wrapcheck
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
