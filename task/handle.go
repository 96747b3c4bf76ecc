package task

import (
	"context"
	"fmt"
	"sync"
)

// Go is the default Scheduler. Each unit of work runs on its own goroutine
// with a private cancellable context.
var Go Scheduler = goScheduler{}

type goScheduler struct{}

// Spawn starts fn on a new goroutine and returns its handle.
// A panic inside fn is recovered and surfaces as an ErrPanic outcome.
func (goScheduler) Spawn(fn Func) Handle {
	ctx, cancel := context.WithCancel(context.Background())

	h := &goHandle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go h.run(ctx, fn)

	return h
}

// goHandle is the goroutine-backed Handle implementation.
type goHandle struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.Mutex
	err       error
	finished  bool
	callbacks []func(Handle)
}

func (h *goHandle) run(ctx context.Context, fn Func) {
	err := protect(ctx, fn)

	h.mu.Lock()
	h.err = err
	h.finished = true
	callbacks := h.callbacks
	h.callbacks = nil
	h.mu.Unlock()

	// The done channel closes before callbacks run, so a callback that
	// inspects the handle always observes a terminal state.
	close(h.done)
	h.cancel()

	for _, cb := range callbacks {
		go cb(h)
	}
}

// protect runs fn converting panics into an ErrPanic outcome.
func protect(ctx context.Context, fn Func) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	return fn(ctx)
}

// Done reports whether the unit has reached a terminal state.
func (h *goHandle) Done() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Err returns the unit's outcome once terminal, nil before that.
func (h *goHandle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

// Cancel cancels the unit's context.
func (h *goHandle) Cancel() {
	h.cancel()
}

// OnDone registers fn to fire exactly once when the unit terminates.
// Registration after termination still fires fn asynchronously.
func (h *goHandle) OnDone(fn func(Handle)) {
	h.mu.Lock()
	if !h.finished {
		h.callbacks = append(h.callbacks, fn)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	go fn(h)
}

// Join blocks until the unit is terminal or ctx fires.
func (h *goHandle) Join(ctx context.Context) error {
	select {
	case <-h.done:
		return h.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}
