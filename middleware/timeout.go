package middleware

import (
	"context"
	"time"
)

// Timeout returns middleware that enforces a per-unit execution deadline.
// When the deadline is exceeded the unit's context is cancelled; a unit
// that acknowledges cancellation terminates with context.DeadlineExceeded.
// A non-positive d makes the middleware a pass-through.
func Timeout(d time.Duration) Middleware {
	return func(ctx context.Context, _ Meta, next Handler) error {
		if d > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d)
			defer cancel()
		}
		return next(ctx)
	}
}
