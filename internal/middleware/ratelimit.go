package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
	"github.com/devkan/FirstAidVox/pkg/response"
)

// RateLimit throttles each client IP to the configured requests per minute.
// The IP comes from gin's ClientIP, so forwarding headers only count when the
// engine trusts the peer as a proxy.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.Header("Retry-After", "60")
			response.Abort(c, pkgErrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}

const (
	maxTrackedClients = 10000
	clientIdleTTL     = 5 * time.Minute
)

// rateLimiter holds a token bucket per client. Idle clients expire from the LRU.
type rateLimiter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, *rate.Limiter]
	perSec  rate.Limit
	burst   int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleTTL),
		perSec:  rate.Limit(float64(requestsPerMin) / 60),
		burst:   max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	bucket, ok := rl.buckets.Get(client)
	if !ok {
		bucket = rate.NewLimiter(rl.perSec, rl.burst)
		rl.buckets.Add(client, bucket)
	}
	rl.mu.Unlock()
	return bucket.Allow()
}
