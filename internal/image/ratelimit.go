package image

import (
	"context"
	"sync"
	"time"
)

// rateLimiter keeps a provider below a number of requests per window
type rateLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	requests []time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:    limit,
		window:   window,
		requests: make([]time.Time, 0, limit),
	}
}

// wait blocks until another request fits into the window or ctx is done
func (rl *rateLimiter) wait(ctx context.Context) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for {
		now := time.Now()
		cutoff := now.Add(-rl.window)
		i := 0
		for i < len(rl.requests) && !rl.requests[i].After(cutoff) {
			i++
		}
		rl.requests = rl.requests[i:]

		if len(rl.requests) < rl.limit {
			rl.requests = append(rl.requests, now)
			return nil
		}

		timer := time.NewTimer(rl.requests[0].Add(rl.window).Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
