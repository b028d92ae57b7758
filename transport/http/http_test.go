package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"guestlist/config"
	"guestlist/infras/otel/mocks"
	authMocks "guestlist/internal/domains/auth/mocks"
	invitationMocks "guestlist/internal/domains/invitation/mocks"
	rsvpMocks "guestlist/internal/domains/rsvp/mocks"
	"guestlist/internal/domains/rsvp/model/dto"
	authHandler "guestlist/internal/handlers/auth"
	invitationHandler "guestlist/internal/handlers/invitation"
	rsvpHandler "guestlist/internal/handlers/rsvp"
	"guestlist/permissions"
	"guestlist/shared/constant"
	transport "guestlist/transport/http"
	"guestlist/transport/http/middleware"
	"guestlist/transport/http/router"
)

type fixture struct {
	rsvp    *rsvpMocks.MockGuestResponseService
	auth    *authMocks.MockAuth
	handler http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment

	f := &fixture{
		rsvp: rsvpMocks.NewMockGuestResponseService(ctrl),
		auth: authMocks.NewMockAuth(ctrl),
	}

	r := router.New(router.DomainHandlers{
		RSVP:       rsvpHandler.New(f.rsvp, otel),
		Auth:       authHandler.New(f.auth, otel, cfg),
		Invitation: invitationHandler.New(invitationMocks.NewMockInvitation(ctrl), otel),
	}, middleware.NewAuthMiddleware(f.auth, otel, permissions.Get(), cfg))

	f.handler = transport.New(cfg, r, middleware.NewAppMiddleware(otel, cfg, nil)).Handler()

	return f
}

func TestHTTP_Health(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestHTTP_PublicSubmission(t *testing.T) {
	f := newFixture(t)
	f.rsvp.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.GuestResponse{ID: 1, FirstName: "Jean"}, nil)

	body := `{"firstName":"Jean","lastName":"Dupont","partySize":1,"availability":"both"}`

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rsvp", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHTTP_AdminRoutesRequireSession(t *testing.T) {
	f := newFixture(t)

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/rsvp"},
		{http.MethodGet, "/api/rsvp/stats"},
		{http.MethodGet, "/api/rsvp/export/csv"},
		{http.MethodPost, "/api/rsvp/bulk"},
		{http.MethodPost, "/api/rsvp/import"},
		{http.MethodPut, "/api/rsvp/1"},
		{http.MethodPatch, "/api/rsvp/1"},
		{http.MethodDelete, "/api/rsvp/1"},
		{http.MethodPost, "/api/send-invitation"},
		{http.MethodPost, "/api/invitation/generate/1"},
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/auth/user"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, httptest.NewRequest(route.method, route.target, strings.NewReader(`{}`)))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
