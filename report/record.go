package report

import (
	"time"

	"github.com/xraph/tend"
)

// Record is the serializable form of a tend.Event. Reporters that leave the
// process (the Redis reporter, for one) flatten events into Records so that
// consumers do not need the live Job handle or the Go error value.
type Record struct {
	Message string       `json:"message" msgpack:"message"`
	JobID   string       `json:"job_id" msgpack:"job_id"`
	JobName string       `json:"job_name,omitempty" msgpack:"job_name,omitempty"`
	Error   string       `json:"error,omitempty" msgpack:"error,omitempty"`
	Trace   []tend.Frame `json:"trace,omitempty" msgpack:"trace,omitempty"`
	Time    time.Time    `json:"time" msgpack:"time"`
}

// NewRecord flattens ev into a Record stamped with the current time.
func NewRecord(ev tend.Event) *Record {
	rec := &Record{
		Message: ev.Message,
		Trace:   ev.Trace,
		Time:    time.Now().UTC(),
	}
	if ev.Job != nil {
		rec.JobID = ev.Job.ID().String()
		rec.JobName = ev.Job.Name()
	}
	if ev.Err != nil {
		rec.Error = ev.Err.Error()
	}
	return rec
}
