package middleware_test

import (
	"errors"
	"fmt"
	"hostel/config"
	"hostel/infras/otel/mocks"
	cacheMocks "hostel/shared/cache/mocks"
	"hostel/shared/constant"
	"hostel/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60
	cfg.App.RateLimiter.TrustProxy = true

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false), redisCache)

	recorder := httptest.NewRecorder()
	app.RateLimit(okHandler()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRateLimit_RedisWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), redisCache)
	handler := app.RateLimit(okHandler())

	key := "limiter:10.1.1.7:curl"

	gomock.InOrder(
		redisCache.EXPECT().Incr(gomock.Any(), key, 60).Return(int64(1), nil),
		redisCache.EXPECT().Incr(gomock.Any(), key, 60).Return(int64(2), nil),
		redisCache.EXPECT().Incr(gomock.Any(), key, 60).Return(int64(3), nil),
	)

	codes := []int{}
	remaining := []string{}

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.1.1.7, 172.16.0.1")
		req.Header.Set(constant.RequestHeaderUserAgent, "curl")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		codes = append(codes, recorder.Code)
		remaining = append(remaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, []string{"1", "0", ""}, remaining)
}

func TestRateLimit_FallsBackWhenRedisFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down")).Times(3)

	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), redisCache)
	handler := app.RateLimit(okHandler())

	codes := []int{}

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.Header.Set(constant.RequestHeaderRealIP, "10.1.1.8")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		codes = append(codes, recorder.Code)
	}

	// burst equals MaxRequests, refill is far slower than the loop
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_FallbackIgnoresForgedHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down")).AnyTimes()

	cfg := limiterConfig(true)
	cfg.App.RateLimiter.TrustProxy = false

	handler := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache).RateLimit(okHandler())

	allowed := 0

	for i := range 50 {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.RemoteAddr = "203.0.113.9:40100"
		req.Header.Set(constant.RequestHeaderForwardedFor, fmt.Sprintf("10.0.0.%d", i))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		if recorder.Code == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 2, allowed)
}

func TestTracing_PassesThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false), nil)

	recorder := httptest.NewRecorder()
	app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}
