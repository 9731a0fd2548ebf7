package port

import (
	"context"
	"time"
)

// CounterStore backs the rate limiter. Incr bumps the counter for key,
// starting a fresh window when none is active, and reports the running count
// plus when the window resets.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
	Close() error
}
