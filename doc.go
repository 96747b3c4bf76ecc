// Package tend supervises fire-and-forget background work spawned by a
// request-handling process. It tracks each unit's lifecycle, lets callers
// optionally await a result with a deadline, guarantees bounded-time shutdown
// of all outstanding work, and centralizes reporting of failures that nobody
// explicitly observed.
//
// Tend is designed as a library, not a service. Import it, create a Runner,
// and spawn ordinary Go functions as supervised jobs.
//
// # Quick Start
//
//	r, err := tend.New(
//	    tend.WithGracePeriod(time.Second),
//	    tend.WithLogger(logger),
//	)
//	job := r.Spawn(func(ctx context.Context) error {
//	    return sendWelcomeEmail(ctx, user)
//	})
//	// ... at shutdown:
//	r.Close()
//
// # Architecture
//
// A Runner owns a registry of live Jobs. Each Job wraps one scheduled unit
// of work (a task.Handle) and unregisters itself the instant the unit
// terminates. Failures that no caller awaited, and closes that overrun the
// grace period, are delivered as Events to a configurable Reporter; the
// tend/report package provides reporters beyond the slog-based default.
//
// All entity IDs use TypeID — type-prefixed, K-sortable, UUIDv7-based,
// compile-time safe identifiers.
package tend
