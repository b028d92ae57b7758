package auth

import (
	"guestlist/config"
	"guestlist/infras/otel"
	"guestlist/internal/domains/auth/model/dto"
	"guestlist/internal/domains/auth/service"
	"guestlist/shared/constant"
	"guestlist/shared/validator"
	"guestlist/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
	cfg     *config.Config
}

func New(service service.Auth, otel otel.Otel, cfg *config.Config) Handler {
	return Handler{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/login", handler.Login)
	r.Post("/logout", handler.Logout)
	r.Get("/auth/user", handler.User)
}

// Login handles administrator login
// @Summary Log in as the administrator
// @Description Checks the credentials and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("username", req.Username).Msg("login refused")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.cookie(res.Token, res.ExpiresAt))

	scope.AddEvent("Administrator logged in")

	response.WithJSON(w, http.StatusOK, res.UserResponse)
}

// Logout handles administrator logout
// @Summary Log out
// @Description Deletes the server side session and clears the cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/logout [post]
// @Security SessionCookie
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	if err := handler.service.Logout(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.cookie("", time.Unix(0, 0)))

	response.WithMessage(w, http.StatusOK, "Logged out successfully")
}

// User reports the current session
// @Summary Current administrator
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 401 {object} response.Error
// @Router /api/auth/user [get]
// @Security SessionCookie
func (handler *Handler) User(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value(constant.ContextKeyUsername).(string)

	response.WithJSON(w, http.StatusOK, dto.UserResponse{Authenticated: true, Username: username})
}

func (handler *Handler) cookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     handler.cfg.SessionCookieName(),
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   handler.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	if value == "" {
		cookie.MaxAge = -1
	}

	return cookie
}
