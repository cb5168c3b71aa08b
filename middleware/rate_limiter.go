package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds a token bucket per client IP.
type RateLimiter struct {
	limiters map[string]*clientLimiter
	perMin   int
	idle     time.Duration
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// NewRateLimiter allows perMin requests per minute per IP. Clients quiet for longer than idle
// are forgotten by Sweep.
func NewRateLimiter(perMin int, idle time.Duration) *RateLimiter {
	if perMin <= 0 {
		perMin = 100
	}
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		perMin:   perMin,
		idle:     idle,
		nowFunc:  time.Now,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *RateLimiter) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	cl, exists := s.limiters[ip]
	if !exists {
		// perMin requests per minute, all of which may arrive at once.
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)}
		s.limiters[ip] = cl
	}
	cl.lastSeen = s.nowFunc()
	return cl.limiter
}

// Sweep drops the limiters of idle clients and returns how many were removed.
func (s *RateLimiter) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.nowFunc().Add(-s.idle)
	removed := 0
	for ip, cl := range s.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(s.limiters, ip)
			removed++
		}
	}
	return removed
}

// Len reports how many clients are tracked.
func (s *RateLimiter) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// Middleware limits requests per IP address.
func (s *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !s.getLimiter(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
