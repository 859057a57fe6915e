package provider

import (
	"context"
	"sync"
	"time"
)

// Limiter is a token-bucket limiter guarding upstream API calls. Both
// upstreams rate-limit aggressively on their free tiers, so every request
// path takes a token first.
type Limiter struct {
	mu        sync.Mutex
	available int
	burst     int
	interval  time.Duration
	last      time.Time
}

// NewLimiter allows burst calls, refilling one token every interval.
func NewLimiter(burst int, interval time.Duration) *Limiter {
	return &Limiter{
		available: burst,
		burst:     burst,
		interval:  interval,
		last:      time.Now(),
	}
}

// Wait blocks until a token is available or ctx is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		if l.take() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.interval):
		}
	}
}

func (l *Limiter) take() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	refilled := int(now.Sub(l.last) / l.interval)
	if refilled > 0 {
		l.available += refilled
		if l.available > l.burst {
			l.available = l.burst
		}
		l.last = l.last.Add(time.Duration(refilled) * l.interval)
	}

	if l.available == 0 {
		return false
	}
	l.available--
	return true
}
