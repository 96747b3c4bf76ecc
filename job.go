package tend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/xraph/tend/id"
	"github.com/xraph/tend/task"
)

// Job is the handle for one supervised unit of work. It is created by
// Runner.Spawn, stays registered with its runner until the unit reaches a
// terminal state, and unregisters itself exactly once at that instant.
//
// The zero value is not usable; always obtain a Job from a Runner.
type Job struct {
	id     id.JobID
	name   string
	handle task.Handle

	// trace is write-once at construction, before the unit starts.
	trace []Frame

	mu            sync.Mutex
	runner        *Runner       // cleared when the job terminates
	grace         time.Duration // owner's grace period at spawn, for use after detach
	explicitWait  bool
	closeReported bool
}

// ID returns the job's unique identifier.
func (j *Job) ID() id.JobID { return j.id }

// Name returns the optional name given at spawn time.
func (j *Job) Name() string { return j.name }

// String implements fmt.Stringer.
func (j *Job) String() string {
	if j.name != "" {
		return fmt.Sprintf("<Job %s %q>", j.id, j.name)
	}
	return fmt.Sprintf("<Job %s>", j.id)
}

// Done reports whether the unit of work has reached a terminal state.
// It never blocks.
func (j *Job) Done() bool {
	return j.handle.Done()
}

// Wait blocks until the unit of work terminates, bounded by ctx, and returns
// its outcome: nil on success, the unit's error on failure. If ctx carries a
// deadline and it elapses first, the job is closed (cancel plus bounded grace
// wait) and ErrWaitTimeout is returned.
//
// Calling Wait takes responsibility for observing the outcome: the runner
// will not additionally report a "Job processing failed" event for this job,
// even if Wait itself times out.
func (j *Job) Wait(ctx context.Context) error {
	j.mu.Lock()
	j.explicitWait = true
	j.mu.Unlock()

	return j.wait(ctx)
}

// wait is the deadline-bounded join without the explicit-wait marking.
// Bulk Runner.Wait goes through here so that failures of unattended jobs
// are still reported.
func (j *Job) wait(ctx context.Context) error {
	err := j.handle.Join(ctx)
	if j.handle.Done() {
		return j.handle.Err()
	}

	// ctx fired before the unit terminated.
	if errors.Is(err, context.DeadlineExceeded) {
		j.Close()
		return ErrWaitTimeout
	}
	return err
}

// Close requests cancellation of the unit of work, then blocks until it
// actually terminates, bounded by the owner's grace period. A unit that
// acknowledges cancellation counts as a clean stop and produces no report.
// A unit that outlives the grace period is reported as a "Job closing
// reached timeout" event; it is not force-killed further.
//
// Close never fails the caller and is idempotent: repeated calls wait again
// but never double-report.
func (j *Job) Close() {
	j.handle.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), j.gracePeriod())
	defer cancel()
	_ = j.handle.Join(ctx)

	if j.handle.Done() {
		return
	}

	j.mu.Lock()
	reported := j.closeReported
	j.closeReported = true
	runner := j.runner
	j.mu.Unlock()

	if reported || runner == nil {
		return
	}

	runner.report(Event{
		Message: MessageCloseTimeout,
		Job:     j,
		Err:     ErrCloseTimeout,
		Trace:   j.trace,
	})
}

// gracePeriod reads the owner's current grace period, falling back to the
// value captured at spawn once the job has detached from its runner.
func (j *Job) gracePeriod() time.Duration {
	j.mu.Lock()
	runner := j.runner
	grace := j.grace
	j.mu.Unlock()

	if runner != nil {
		return runner.GracePeriod()
	}
	return grace
}

// finished is the one-shot completion notification, invoked by the handle
// exactly once when the unit reaches a terminal state. It unregisters the
// job, reports an unobserved failure if nobody waited, and drops the owner
// back-reference.
func (j *Job) finished(h task.Handle) {
	j.mu.Lock()
	runner := j.runner
	j.runner = nil
	explicit := j.explicitWait
	j.mu.Unlock()

	if runner == nil {
		return
	}
	runner.remove(j)

	err := h.Err()
	if err == nil || explicit || errors.Is(err, context.Canceled) {
		return
	}

	runner.report(Event{
		Message: MessageProcessingFailed,
		Job:     j,
		Err:     err,
		Trace:   j.trace,
	})
}
