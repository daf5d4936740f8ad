package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spinrate/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedEcho(t *testing.T, burst int) *echo.Echo {
	cfg := &config.Config{}
	cfg.HTTP.RateLimit = &config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: burst}

	limiter := NewRateLimitMiddleware(cfg)
	t.Cleanup(limiter.Stop)

	e := echo.New()
	e.POST("/reviews", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, limiter.Limit)

	return e
}

func postFrom(e *echo.Echo, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/reviews", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestRateLimitMiddleware_PerClientBurst(t *testing.T) {
	e := newRateLimitedEcho(t, 2)

	assert.Equal(t, http.StatusCreated, postFrom(e, "203.0.113.1"))
	assert.Equal(t, http.StatusCreated, postFrom(e, "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, postFrom(e, "203.0.113.1"))

	assert.Equal(t, http.StatusCreated, postFrom(e, "203.0.113.2"), "other clients keep their own bucket")
}

func TestRateLimitMiddleware_EvictIdle(t *testing.T) {
	cfg := &config.Config{}
	limiter := NewRateLimitMiddleware(cfg)
	t.Cleanup(limiter.Stop)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.allow("198.51.100.7")
	now = now.Add(limiterIdleTTL + time.Second)
	limiter.allow("198.51.100.8")
	limiter.evictIdle()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.limiters, "198.51.100.7")
	assert.Contains(t, limiter.limiters, "198.51.100.8")
}
