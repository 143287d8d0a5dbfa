// Package ratelimit keeps one token bucket per caller key.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out per-key token buckets. Buckets left idle long enough to
// refill completely are swept, so the map only holds recently active keys.
type Limiter struct {
	mu        sync.Mutex
	entries   map[string]*entry
	every     time.Duration
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New allows perMinute events per key, with bursts of up to burst.
// A perMinute of zero or less disables limiting.
func New(perMinute, burst int) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		burst:   burst,
		now:     time.Now,
	}
	if perMinute > 0 {
		l.every = time.Minute / time.Duration(perMinute)
	}
	if l.burst < 1 {
		l.burst = 1
	}
	// a bucket idle this long is full again and equal to a fresh one
	l.idle = l.every * time.Duration(l.burst)
	return l
}

// Allow reports whether key may act now
func (l *Limiter) Allow(key string) bool {
	if l == nil || l.every == 0 {
		return true
	}

	l.mu.Lock()
	now := l.now()
	l.sweep(now)
	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Len reports how many keys currently hold a bucket
func (l *Limiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// sweep drops idle buckets at most once per idle period. Callers hold mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now

	for key, e := range l.entries {
		if now.Sub(e.lastSeen) >= l.idle {
			delete(l.entries, key)
		}
	}
}
