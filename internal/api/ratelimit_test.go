package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/config"
	"github.com/gkulo22/WorkoutApp-API/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimiterConfigFrom(t *testing.T) {
	cfg := RateLimiterConfigFrom(config.RateLimitConfig{RequestsPerMinute: 120, Burst: 20})
	assert.Equal(t, rate.Limit(2), cfg.Rate)
	assert.Equal(t, 20, cfg.Burst)

	cfg = RateLimiterConfigFrom(config.RateLimitConfig{RequestsPerMinute: 30})
	assert.Equal(t, 30, cfg.Burst)
}

func TestRateLimiter_RejectsOverBurstPerUser(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{Rate: rate.Limit(1.0 / 60.0), Burst: 2}, logger.Discard())
	t.Cleanup(limiter.Stop)

	s := newTestServer(t, func(d *Dependencies) { d.RateLimiter = limiter })
	// Registration and login consume the anonymous client's burst.
	token := s.login(t, "ana")

	for i := 0; i < 2; i++ {
		w := s.do(t, http.MethodGet, "/api/v1/plans", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/v1/plans", token, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	w = s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "ana", "password": "secret123"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	assert.Equal(t, 2, limiter.LimiterCount())
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, CleanupInterval: time.Hour}, logger.Discard())
	t.Cleanup(limiter.Stop)

	limiter.limiterFor("user:a")
	limiter.limiterFor("user:b")
	require.Equal(t, 2, limiter.LimiterCount())

	limiter.cleanup(time.Now().Add(time.Hour))
	assert.Equal(t, 2, limiter.LimiterCount())

	limiter.cleanup(time.Now().Add(3 * time.Hour))
	assert.Zero(t, limiter.LimiterCount())
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1}, logger.Discard())
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}
