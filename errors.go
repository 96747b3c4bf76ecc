package tend

import "errors"

var (
	// ErrWaitTimeout is returned by Job.Wait when the deadline elapses
	// before the job terminates. The job is closed before this is returned,
	// so a timed-out wait never leaves an orphaned running job.
	ErrWaitTimeout = errors.New("tend: wait timed out")

	// ErrCloseTimeout is the error attached to a "Job closing reached
	// timeout" event. It is reported, never returned to a caller.
	ErrCloseTimeout = errors.New("tend: close timed out")

	// Configuration errors.
	ErrNegativeGracePeriod = errors.New("tend: negative grace period")
	ErrNilScheduler        = errors.New("tend: nil scheduler")
)
