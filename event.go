package tend

import (
	"runtime"
)

// Event messages. Reporters can switch on these to tell the two report
// kinds apart.
const (
	// MessageProcessingFailed is reported when a job's unit of work ended
	// with an error and no caller ever explicitly awaited it.
	MessageProcessingFailed = "Job processing failed"

	// MessageCloseTimeout is reported when cancellation of a job did not
	// complete within the grace period.
	MessageCloseTimeout = "Job closing reached timeout"
)

// Event describes a failure nobody observed or a close that overran the
// grace period. Events are delivered to the runner's configured Reporter,
// or to its fallback sink when none is configured. They are never raised
// to any caller.
type Event struct {
	// Message is one of MessageProcessingFailed or MessageCloseTimeout.
	Message string

	// Job is the job that produced the event.
	Job *Job

	// Err is the triggering failure, or ErrCloseTimeout.
	Err error

	// Trace is the call stack captured when the job was spawned.
	// Present only when the runner runs in debug mode.
	Trace []Frame
}

// Frame is one resolved call-stack frame captured at spawn time in debug
// mode. It is a plain value type so event records can be serialized by
// report codecs.
type Frame struct {
	Function string `json:"function" msgpack:"function"`
	File     string `json:"file" msgpack:"file"`
	Line     int    `json:"line" msgpack:"line"`
}

// captureTrace resolves the current call stack into Frames, skipping the
// given number of frames on top of captureTrace itself. Depth is capped;
// events are diagnostics, not profiles.
func captureTrace(skip int) []Frame {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}

	return out
}
