package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"guestlist/config"
	"guestlist/infras/otel/mocks"
	"guestlist/shared/cache"
	cacheMocks "guestlist/shared/cache/mocks"
	"guestlist/shared/constant"
	"guestlist/transport/http/middleware"
)

func teapot(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

func TestAppMiddleware_Tracing(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	rec := httptest.NewRecorder()
	app.Tracing(http.HandlerFunc(teapot)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rsvp", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	middleware.RequestID(http.HandlerFunc(teapot)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setupMock     func(m *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:      "disabled",
			setupMock: func(*cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusTeapot,
		},
		{
			name:   "first request in window",
			enable: true,
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				m.EXPECT().Save(gomock.Any(), "limiter:192.0.2.1:unknown", 1, 60).Return(nil)
			},
			wantCode:      http.StatusTeapot,
			wantRemaining: "2",
		},
		{
			name:   "limit exceeded",
			enable: true,
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*int)) = 3

						return nil
					})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "cache unavailable",
			enable: true,
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusTeapot,
		},
		{
			name:   "counter not recorded",
			enable: true,
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(errors.New("read only replica"))
			},
			wantCode: http.StatusTeapot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			tt.setupMock(redisCache)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache)

			rec := httptest.NewRecorder()
			app.RateLimit()(http.HandlerFunc(teapot)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rsvp", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
