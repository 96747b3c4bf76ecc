// Package middleware provides composable middleware for supervised units of
// work. Middleware wraps the unit synchronously and can modify execution
// (recover from panics, log, add tracing, enforce a deadline, etc.). The
// runner applies its configured chain once, at spawn time.
package middleware

import (
	"context"

	"github.com/xraph/tend/id"
)

// Meta carries the identity of the job being executed. It is the only thing
// middleware may know about a job: the job handle itself belongs to the
// runner and its caller.
type Meta struct {
	// JobID identifies the job across logs, spans, and reported events.
	JobID id.JobID

	// JobName is the optional human-readable name given at spawn time.
	JobName string

	// RunnerID identifies the runner that spawned the job.
	RunnerID id.RunnerID
}

// Handler is the terminal function that executes the unit of work.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler with cross-cutting logic.
// It receives the current context, the metadata of the job being executed,
// and the next handler to call. Middleware MUST call next to continue the
// chain (unless short-circuiting on error).
type Middleware func(ctx context.Context, m Meta, next Handler) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, timeout) executes as:
//
//	logging → recover → timeout → unit
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, m Meta, next Handler) error {
		// Build the chain from the end backwards.
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, m, prev)
			}
		}
		return h(ctx)
	}
}
