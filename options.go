package tend

import (
	"log/slog"
	"time"

	"github.com/xraph/tend/middleware"
	"github.com/xraph/tend/task"
)

// Option configures a Runner.
type Option func(*Runner) error

// WithGracePeriod sets how long Close waits for a cancelled job to
// terminate before reporting a close timeout.
func WithGracePeriod(d time.Duration) Option {
	return func(r *Runner) error {
		if d < 0 {
			return ErrNegativeGracePeriod
		}
		r.config.GracePeriod = d
		return nil
	}
}

// WithDebug toggles call-stack capture at spawn time. Captured frames are
// attached to reported events.
func WithDebug(enabled bool) Option {
	return func(r *Runner) error {
		r.config.Debug = enabled
		return nil
	}
}

// WithLogger sets the structured logger for the runner.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) error {
		if l != nil {
			r.logger = l
		}
		return nil
	}
}

// WithReporter sets the event reporter. Without one, events go to the
// runner's fallback sink.
func WithReporter(rep Reporter) Option {
	return func(r *Runner) error {
		r.reporter = rep
		return nil
	}
}

// WithFallbackReporter replaces the sink used when no reporter is
// configured. The default fallback logs events on the runner's logger.
func WithFallbackReporter(rep Reporter) Option {
	return func(r *Runner) error {
		r.fallback = rep
		return nil
	}
}

// WithScheduler sets the scheduler that runs spawned units of work.
// The default is task.Go, which runs each unit on its own goroutine.
func WithScheduler(s task.Scheduler) Option {
	return func(r *Runner) error {
		if s == nil {
			return ErrNilScheduler
		}
		r.scheduler = s
		return nil
	}
}

// WithMiddleware sets the middleware chain applied to every spawned unit.
// Middleware are applied left-to-right: the first is the outermost wrapper.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(r *Runner) error {
		if len(mws) > 0 {
			r.mw = middleware.Chain(mws...)
		}
		return nil
	}
}

// SpawnOption configures a single spawned job.
type SpawnOption func(*spawnOptions)

type spawnOptions struct {
	name string
}

// WithName attaches a human-readable name to the job for log lines, trace
// spans, and reported events.
func WithName(name string) SpawnOption {
	return func(o *spawnOptions) { o.name = name }
}
