package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"calendar-connect/pkg/response"
)

// Bounds on the per-client limiter cache. An evicted client starts over
// with a full bucket, which at worst grants one extra burst per TTL.
const (
	limiterCacheSize = 4096
	limiterTTL       = 10 * time.Minute
)

// RateLimit throttles requests per client identity (user id when present,
// client IP otherwise) using a token bucket refilled at per_min/60 per
// second.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.RateLimit.PerMin
	burst := m.cfg.RateLimit.Burst
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = perMin
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL)
	limiterFor := func(key string) *rate.Limiter {
		if lim, ok := limiters.Get(key); ok {
			return lim
		}
		lim := rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst)
		limiters.Add(key, lim)
		return lim
	}

	return func(c *gin.Context) {
		key := c.GetHeader("X-User-ID")
		if key == "" {
			key = c.ClientIP()
		}
		if !limiterFor(key).Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
