package middleware

import (
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"

	// past this many tracked clients, new ones share one bucket
	maxLocalLimiters = 10000
	sharedLimiterKey = "*"
)

// RateLimit counts requests per client in a fixed redis window. When redis
// fails the request is judged by an in-process token bucket instead.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds

		clientIP := a.getClientIP(r)
		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP, a.getUA(r))

		count, err := a.cache.Incr(r.Context(), cacheKey, windowSecs)
		if err != nil {
			log.Warn().Err(err).Str("client", clientIP).Msg("rate limiter falling back to local bucket")

			if !a.localLimiter(clientIP).Allow() {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)

			return
		}

		if int(count) > maxReqs {
			response.WithRequestLimitExceeded(w)

			return
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-int(count))))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(w, r)
	})
}

// localLimiter returns the token bucket of clientIP. Every use pushes its
// expiry one window ahead, so only idle clients are evicted.
func (a *appMiddleware) localLimiter(clientIP string) *rate.Limiter {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := clientIP
	if _, found := a.limiters.Get(key); !found && a.limiters.ItemCount() >= maxLocalLimiters {
		key = sharedLimiterKey
	}

	var limiter *rate.Limiter

	if cached, found := a.limiters.Get(key); found {
		limiter, _ = cached.(*rate.Limiter)
	}

	if limiter == nil {
		cfg := a.config.App.RateLimiter
		every := rate.Inf

		if cfg.WindowSeconds > 0 && cfg.MaxRequests > 0 {
			every = rate.Limit(float64(cfg.MaxRequests) / float64(cfg.WindowSeconds))
		}

		limiter = rate.NewLimiter(every, max(cfg.MaxRequests, 1))
	}

	a.limiters.Set(key, limiter, gocache.DefaultExpiration)

	return limiter
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// getClientIP reads the forwarding headers only behind a trusted proxy;
// otherwise callers could pick their own bucket.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if a.config.App.RateLimiter.TrustProxy {
		// X-Forwarded-For can carry a chain, the first entry is the client
		if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
			first, _, _ := strings.Cut(xff, ",")

			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
