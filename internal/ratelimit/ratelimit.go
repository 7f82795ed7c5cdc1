// Package ratelimit paces outbound news requests so a run stays polite
// to the upstream source.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrBudgetExhausted = errors.New("request budget exhausted")

// Limiter enforces a minimum interval between remote requests and an
// optional per-run request budget.
type Limiter struct {
	mu          sync.Mutex
	minInterval time.Duration
	maxRequests int // 0 = unlimited
	count       int
	last        time.Time
}

func New(minInterval time.Duration, maxRequests int) *Limiter {
	return &Limiter{
		minInterval: minInterval,
		maxRequests: maxRequests,
	}
}

// Wait claims a request slot, sleeping if the previous request fired too
// recently. Returns ErrBudgetExhausted once the budget is spent; the
// caller treats that like any other fetch failure.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	if l.maxRequests > 0 && l.count >= l.maxRequests {
		l.mu.Unlock()
		return ErrBudgetExhausted
	}

	var wait time.Duration
	if l.minInterval > 0 && !l.last.IsZero() {
		if elapsed := time.Since(l.last); elapsed < l.minInterval {
			wait = l.minInterval - elapsed
		}
	}

	l.count++
	l.last = time.Now().Add(wait)
	l.mu.Unlock()

	if wait == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// Requests reports how many slots have been claimed this run.
func (l *Limiter) Requests() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
