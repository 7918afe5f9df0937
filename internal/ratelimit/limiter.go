// Package ratelimit smooths the rate of expensive parse requests.
//
// Each upload is parsed synchronously within its request, so a burst of
// large exports can pin the process. The limiter enforces a minimum spacing
// between accepted requests instead of a bursty token window.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter admits at most one request per interval. A nil Limiter admits
// everything, so callers can disable limiting by configuration.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// NewPerMinute builds a limiter admitting rpm requests per minute.
// Returns nil (no limiting) when rpm <= 0.
func NewPerMinute(rpm int) *Limiter {
	if rpm <= 0 {
		return nil
	}
	return &Limiter{interval: time.Minute / time.Duration(rpm)}
}

// Allow reports whether a request arriving at now may proceed. The first
// request is always admitted; each admission pushes the next slot one
// interval forward from the admitted time.
func (l *Limiter) Allow(now time.Time) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if now.Before(l.next) {
		return false
	}
	l.next = now.Add(l.interval)
	return true
}
