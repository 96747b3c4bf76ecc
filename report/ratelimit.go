package report

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/xraph/tend"
)

// RateLimited wraps a reporter with a token-bucket limiter so that an event
// storm (a handler spawning thousands of failing jobs) cannot flood the
// underlying sink. Events that exceed the sustained rate are dropped and
// counted.
type RateLimited struct {
	next    tend.Reporter
	limiter *rate.Limiter
	dropped atomic.Int64
}

// NewRateLimited wraps next with a limit of eventsPerSecond sustained and
// burst events of headroom. A burst below 1 is raised to 1.
func NewRateLimited(next tend.Reporter, eventsPerSecond float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), burst),
	}
}

// Report implements tend.Reporter.
func (r *RateLimited) Report(ev tend.Event) {
	if !r.limiter.Allow() {
		r.dropped.Add(1)
		return
	}
	r.next.Report(ev)
}

// Dropped returns how many events have been dropped so far.
func (r *RateLimited) Dropped() int64 {
	return r.dropped.Load()
}
