package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"conversational-task-manager/pkg/response"
)

// RateLimit enforces a per-user request budget. Must run after Auth.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			// Unauthenticated requests never reach here when routes are
			// wired correctly; fail closed if they do.
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !m.limiter.Allow(sc.UserID) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for user %s", sc.UserID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimiter keeps one token bucket per user with auto-expiry so idle
// users do not accumulate.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked users
			nil,           // no eviction callback
			time.Minute*5, // TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
