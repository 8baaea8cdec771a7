package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type keyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       *sync.RWMutex
	r        rate.Limit
	b        int
}

func newKeyedRateLimiter(r rate.Limit, b int) *keyedRateLimiter {
	return &keyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		mu:       &sync.RWMutex{},
		r:        r,
		b:        b,
	}
}

func (k *keyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	limiter, exists := k.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(k.r, k.b)
		k.limiters[key] = limiter
	}

	return limiter
}

// RateLimitByIP guards unauthenticated endpoints (login/register) against
// brute force. r = requests per second, b = burst.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests from this IP"})
			return
		}
		c.Next()
	}
}

func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests from this user"})
			return
		}
		c.Next()
	}
}
