// Package task defines the boundary between tend and whatever actually runs
// asynchronous work: a Scheduler spawns units of work and hands back a Handle
// for inspecting, cancelling, and joining the running unit.
//
// The default Scheduler is Go, which runs each unit on its own goroutine.
// Anything that can schedule a Func and honor the Handle contract can stand
// in for it — a worker pool, a test double, an event loop adapter.
package task

import (
	"context"
	"errors"
)

// ErrPanic wraps a recovered panic from a unit of work. The panic value is
// attached to the wrapping error's message.
var ErrPanic = errors.New("task: panic in unit of work")

// Func is a single unit of work. It must honor ctx cancellation; returning
// ctx.Err() after the context is cancelled is the cancellation
// acknowledgement and is not treated as a failure.
type Func func(ctx context.Context) error

// Handle tracks one scheduled unit of work.
//
// A handle is terminal once the unit has returned (or panicked). All methods
// are safe for concurrent use.
type Handle interface {
	// Done reports whether the unit has reached a terminal state.
	Done() bool

	// Err returns the unit's outcome. It is only meaningful once Done
	// reports true; before that it returns nil.
	Err() error

	// Cancel requests cancellation of the unit's context. It never blocks
	// and is safe to call repeatedly or after termination.
	Cancel()

	// OnDone registers fn to run exactly once, asynchronously, when the
	// unit reaches a terminal state. If the unit is already terminal the
	// callback still fires (on a fresh goroutine). No ordering is
	// guaranteed between callbacks of different handles.
	OnDone(fn func(Handle))

	// Join blocks until the unit is terminal or ctx is done, whichever
	// comes first. It returns the unit's outcome, or ctx.Err() if the
	// context fired first. Join never cancels the unit.
	Join(ctx context.Context) error
}

// Scheduler schedules units of work for immediate execution. Spawn must not
// block: the unit starts running asynchronously and the returned Handle is
// live immediately.
type Scheduler interface {
	Spawn(fn Func) Handle
}
