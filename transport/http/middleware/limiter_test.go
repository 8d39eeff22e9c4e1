package middleware

import (
	"fmt"
	"hostel/config"
	"hostel/infras/otel/mocks"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiterMiddleware(trustProxy bool) *appMiddleware {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60
	cfg.App.RateLimiter.TrustProxy = trustProxy

	app, _ := NewAppMiddleware(mocks.NewOtel(), cfg, nil).(*appMiddleware)

	return app
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		headers    map[string]string
		expected   string
	}{
		{name: "socket peer", expected: "198.51.100.4"},
		{name: "forwarded header ignored", headers: map[string]string{"X-Forwarded-For": "10.0.0.1"}, expected: "198.51.100.4"},
		{name: "first forwarded entry", trustProxy: true, headers: map[string]string{"X-Forwarded-For": "10.0.0.1, 172.16.0.1"}, expected: "10.0.0.1"},
		{name: "real ip", trustProxy: true, headers: map[string]string{"X-Real-IP": " 10.0.0.2 "}, expected: "10.0.0.2"},
		{name: "trusted without headers", trustProxy: true, expected: "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms", nil)
			req.RemoteAddr = "198.51.100.4:51000"

			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			assert.Equal(t, tt.expected, newLimiterMiddleware(tt.trustProxy).getClientIP(req))
		})
	}
}

func TestLocalLimiter_ReusesBucket(t *testing.T) {
	app := newLimiterMiddleware(false)

	first := app.localLimiter("10.0.0.1")

	assert.Same(t, first, app.localLimiter("10.0.0.1"))
	assert.NotSame(t, first, app.localLimiter("10.0.0.2"))
	assert.Equal(t, 2, app.limiters.ItemCount())
}

func TestLocalLimiter_BoundedClients(t *testing.T) {
	app := newLimiterMiddleware(true)

	for i := range maxLocalLimiters {
		app.localLimiter(fmt.Sprintf("client-%d", i))
	}

	require.Equal(t, maxLocalLimiters, app.limiters.ItemCount())

	overflow := app.localLimiter("late-client-1")

	assert.Same(t, overflow, app.localLimiter("late-client-2"))
	assert.Equal(t, maxLocalLimiters+1, app.limiters.ItemCount())
}
