package mw

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"pokedex-backend/internal/errs"
)

// IPRateLimiter keeps a token bucket per client IP. Buckets of clients that
// stay quiet for the idle TTL are evicted.
type IPRateLimiter struct {
	ips *cache.Cache
	mu  sync.Mutex
	r   rate.Limit
	b   int
	ttl time.Duration
}

// NewIPRateLimiter creates a limiter allowing r requests per second with burst b.
func NewIPRateLimiter(r rate.Limit, b int, ttl time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		ips: cache.New(ttl, 2*ttl),
		r:   r,
		b:   b,
		ttl: ttl,
	}
}

// GetLimiter returns the limiter for ip, creating it on first use. Every call
// pushes the eviction deadline back by the idle TTL.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	if v, found := i.ips.Get(ip); found {
		limiter := v.(*rate.Limiter)
		i.ips.Set(ip, limiter, i.ttl)
		return limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Set(ip, limiter, i.ttl)
	return limiter
}

// Len reports how many client buckets are currently tracked.
func (i *IPRateLimiter) Len() int {
	return i.ips.ItemCount()
}

// RateLimiter is a middleware for IP-based rate limiting.
func RateLimiter(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			httpErr := errs.FromError(errs.ErrTooManyRequests)
			c.AbortWithStatusJSON(httpErr.Status, httpErr)
			return
		}
		c.Next()
	}
}
