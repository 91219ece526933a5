package mw

import (
	"sync"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type ipLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
	counter  atomic.Int64
}

func newIPLimiterStore(rps int, burst int) *ipLimiterStore {
	return &ipLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (s *ipLimiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[ip]
	if !ok {
		l = rate.NewLimiter(s.rps, s.burst)
		s.limiters[ip] = l
	}
	// Evict idle entries every 1000 lookups so the map stays bounded.
	if s.counter.Add(1)%1000 == 0 {
		for k, e := range s.limiters {
			if e.Tokens() >= float64(s.burst) {
				delete(s.limiters, k)
			}
		}
	}
	return l
}

// LoginThrottle applies a per-IP token bucket on credential endpoints.
// Disabled when rps <= 0.
func LoginThrottle(rps int, burst int) fiber.Handler {
	if rps <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if burst <= 0 {
		burst = rps
	}
	store := newIPLimiterStore(rps, burst)
	return func(c *fiber.Ctx) error {
		if !store.get(c.IP()).Allow() {
			c.Set("Retry-After", "1")
			return fiber.NewError(fiber.StatusTooManyRequests, "too many attempts")
		}
		return c.Next()
	}
}
