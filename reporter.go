package tend

import (
	"log/slog"
	"strconv"
)

// Reporter receives events about jobs whose failures nobody observed and
// about closes that overran the grace period. Implementations must be safe
// for concurrent use; events from different jobs may interleave arbitrarily.
//
// Reporting is fire-and-forget: a Reporter cannot fail a job or its caller.
type Reporter interface {
	Report(ev Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ev Event)

// Report implements Reporter.
func (f ReporterFunc) Report(ev Event) { f(ev) }

// slogReporter is the runner's fallback sink: events become error-level log
// records on the runner's logger.
type slogReporter struct {
	logger *slog.Logger
}

func (r slogReporter) Report(ev Event) {
	attrs := make([]any, 0, 4)
	if ev.Job != nil {
		attrs = append(attrs, slog.String("job_id", ev.Job.ID().String()))
		if name := ev.Job.Name(); name != "" {
			attrs = append(attrs, slog.String("job_name", name))
		}
	}
	if ev.Err != nil {
		attrs = append(attrs, slog.String("error", ev.Err.Error()))
	}
	if len(ev.Trace) > 0 {
		top := ev.Trace[0]
		attrs = append(attrs, slog.String("spawned_at", top.File+":"+strconv.Itoa(top.Line)))
	}

	r.logger.Error(ev.Message, attrs...)
}
