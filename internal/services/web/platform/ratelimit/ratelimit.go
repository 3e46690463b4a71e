// Package ratelimit throttles form submissions per client.
package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pleromasprings/website/internal/services/web/platform/httpx"
)

const (
	defaultIdleTTL       = 10 * time.Minute
	defaultSweepInterval = 5 * time.Minute
)

// Limiter keeps one token bucket per key. Buckets idle longer than the idle
// TTL are dropped on a later call, so no background goroutine is needed.
type Limiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	entries   map[string]*entry
	lastSweep time.Time
	now       func() time.Time
}

type entry struct {
	limiter      *rate.Limiter
	lastAccessed time.Time
}

// New builds a limiter allowing perMinute requests per key with the given
// burst. A non-positive perMinute disables limiting.
func New(perMinute int, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &Limiter{
		limit:   limit,
		burst:   burst,
		idleTTL: defaultIdleTTL,
		entries: map[string]*entry{},
		now:     time.Now,
	}
}

// Allow consumes one token for key and reports whether the request may
// proceed. A nil limiter allows everything.
func (l *Limiter) Allow(key string) bool {
	if l == nil || l.limit == rate.Inf {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepLocked(now)
	current, ok := l.entries[key]
	if !ok {
		current = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = current
	}
	current.lastAccessed = now
	return current.limiter.AllowN(now, 1)
}

// Len reports how many keys are tracked.
func (l *Limiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Limiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < defaultSweepInterval {
		return
	}
	l.lastSweep = now
	for key, current := range l.entries {
		if now.Sub(current.lastAccessed) > l.idleTTL {
			delete(l.entries, key)
		}
	}
}

// Middleware rejects POST requests over the limit by handing them to
// onLimited. Other methods pass through untouched.
func Middleware(l *Limiter, key func(*http.Request) string, onLimited http.Handler) httpx.Middleware {
	if onLimited == nil {
		onLimited = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if l == nil || key == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && !l.Allow(key(r)) {
				onLimited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
