package ratelimiter

import (
	"sync"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles login attempts per username using an in-process
// token bucket. Entries are created lazily on first attempt.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perMin   int
}

func NewLoginLimiter(attemptsPerMinute int) *LoginLimiter {
	if attemptsPerMinute <= 0 {
		attemptsPerMinute = 5
	}
	return &LoginLimiter{
		limiters: make(map[string]*rate.Limiter),
		perMin:   attemptsPerMinute,
	}
}

// Allow reports whether another login attempt is permitted for the key.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(l.perMin)/60.0), l.perMin)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}
