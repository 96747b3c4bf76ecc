package tend

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/xraph/tend/id"
	"github.com/xraph/tend/middleware"
	"github.com/xraph/tend/task"
)

// Runner owns the registry of live jobs. It spawns supervised units of work,
// offers bulk wait/close over everything currently tracked, and holds the
// grace period and event reporter every job uses.
//
// Create one Runner per owning context (a server, a subsystem) and keep it
// for that context's lifetime. All methods are safe for concurrent use.
type Runner struct {
	id        id.RunnerID
	logger    *slog.Logger
	scheduler task.Scheduler
	mw        middleware.Middleware
	fallback  Reporter

	mu       sync.Mutex
	jobs     map[*Job]struct{}
	config   Config
	reporter Reporter
}

// New creates a Runner with the given options.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		id:        id.NewRunnerID(),
		logger:    slog.Default(),
		scheduler: task.Go,
		jobs:      make(map[*Job]struct{}),
		config:    DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.fallback == nil {
		r.fallback = slogReporter{logger: r.logger}
	}
	return r, nil
}

// ID returns the runner's unique identifier.
func (r *Runner) ID() id.RunnerID { return r.id }

// Logger returns the runner's logger.
func (r *Runner) Logger() *slog.Logger { return r.logger }

// Config returns a copy of the runner's current configuration.
func (r *Runner) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config
}

// Spawn schedules fn for immediate execution and returns its Job. The job
// is registered with this runner before Spawn returns and unregisters
// itself the instant fn reaches a terminal state.
//
// Spawn never blocks: fn starts running asynchronously on the runner's
// scheduler, wrapped in the runner's middleware chain if one is configured.
func (r *Runner) Spawn(fn task.Func, opts ...SpawnOption) *Job {
	var so spawnOptions
	for _, opt := range opts {
		opt(&so)
	}

	r.mu.Lock()
	debug := r.config.Debug
	grace := r.config.GracePeriod
	r.mu.Unlock()

	j := &Job{
		id:     id.NewJobID(),
		name:   so.name,
		runner: r,
		grace:  grace,
	}
	if debug {
		// Skip Spawn itself so the first frame is the spawning caller.
		j.trace = captureTrace(1)
	}

	unit := fn
	if r.mw != nil {
		mw := r.mw
		meta := middleware.Meta{JobID: j.id, JobName: j.name, RunnerID: r.id}
		unit = func(ctx context.Context) error {
			return mw(ctx, meta, middleware.Handler(fn))
		}
	}

	j.handle = r.scheduler.Spawn(unit)
	r.add(j)
	j.handle.OnDone(j.finished)

	return j
}

// Wait blocks until every currently registered job has settled, each one
// bounded independently by ctx and all of them awaited concurrently: total
// latency is set by the slowest job, not the sum. Jobs that outlive a ctx
// deadline are closed; their timeouts are swallowed.
//
// Unlike Job.Wait, bulk Wait does not mark jobs as explicitly observed, so
// failures of unattended jobs are still reported. An empty registry returns
// immediately.
func (r *Runner) Wait(ctx context.Context) {
	jobs := r.Jobs()
	if len(jobs) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = j.wait(ctx)
		}()
	}
	wg.Wait()
}

// Close cancels every currently registered job and blocks until each has
// terminated or individually reported a close timeout. All closes run
// concurrently, so total latency is bounded by the grace period, not by
// N times the grace period. An empty registry returns immediately.
func (r *Runner) Close() {
	jobs := r.Jobs()
	if len(jobs) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.Close()
		}()
	}
	wg.Wait()
}

// GracePeriod returns the grace period applied by every job's Close.
func (r *Runner) GracePeriod() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config.GracePeriod
}

// SetGracePeriod changes the grace period for subsequent closes.
func (r *Runner) SetGracePeriod(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config.GracePeriod = d
}

// Reporter returns the configured event reporter, or nil if events go to
// the runner's fallback sink.
func (r *Runner) Reporter() Reporter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter
}

// SetReporter changes the event reporter. A nil reporter restores the
// fallback sink.
func (r *Runner) SetReporter(rep Reporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reporter = rep
}

// Contains reports whether j is currently registered with this runner.
func (r *Runner) Contains(j *Job) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jobs[j]
	return ok
}

// Len returns the number of currently registered jobs.
func (r *Runner) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

// Jobs returns a snapshot of the currently registered jobs. Mutations made
// after the snapshot is taken are not observed by the returned slice.
// Ordering is unspecified.
func (r *Runner) Jobs() []*Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Job, 0, len(r.jobs))
	for j := range r.jobs {
		out = append(out, j)
	}
	return out
}

func (r *Runner) add(j *Job) {
	r.mu.Lock()
	r.jobs[j] = struct{}{}
	r.mu.Unlock()
}

func (r *Runner) remove(j *Job) {
	r.mu.Lock()
	delete(r.jobs, j)
	r.mu.Unlock()
}

// report delivers ev to the configured reporter, falling back to the
// runner's default sink. Reporting is fire-and-forget: a panicking reporter
// is contained and logged, never propagated to the job or its caller.
func (r *Runner) report(ev Event) {
	r.mu.Lock()
	rep := r.reporter
	r.mu.Unlock()

	if rep == nil {
		rep = r.fallback
	}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("event reporter panicked",
				slog.Any("panic", p),
				slog.String("message", ev.Message),
				slog.String("job_id", ev.Job.ID().String()),
			)
		}
	}()

	rep.Report(ev)
}
