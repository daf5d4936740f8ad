package middleware

import (
	"net/http"
	"sync"
	"time"

	"spinrate/config"
	"spinrate/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 1.0
	defaultBurst             = 5
	limiterIdleTTL           = 10 * time.Minute
	limiterSweepInterval     = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a token bucket per client IP.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimitMiddleware creates a limiter from the HTTP rate limit configuration.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rps, burst := defaultRequestsPerSecond, defaultBurst
	if rl := cfg.HTTP.RateLimit; rl != nil {
		if rl.RequestsPerSecond > 0 {
			rps = rl.RequestsPerSecond
		}
		if rl.Burst > 0 {
			burst = rl.Burst
		}
	}

	m := &RateLimitMiddleware{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go m.sweep()

	return m
}

// Limit rejects requests above the client's rate with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			c.Response().Header().Set("Retry-After", "1")

			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please slow down", nil)
		}

		return next(c)
	}
}

// Stop ends the idle-limiter sweep.
func (m *RateLimitMiddleware) Stop() {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}

func (m *RateLimitMiddleware) allow(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[key] = entry
	}
	entry.lastSeen = m.now()

	return entry.limiter.Allow()
}

func (m *RateLimitMiddleware) sweep() {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *RateLimitMiddleware) evictIdle() {
	cutoff := m.now().Add(-limiterIdleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entry := range m.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(m.limiters, key)
		}
	}
}
