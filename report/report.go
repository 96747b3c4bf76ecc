// Package report provides Reporter implementations beyond the runner's
// slog-based fallback: fan-out to several sinks, token-bucket rate limiting
// for event storms, publication to a Redis channel, and OpenTelemetry
// counters. Event records have wire codecs (JSON, MessagePack) so external
// consumers can decode what the Redis reporter publishes.
package report

import (
	"github.com/xraph/tend"
)

// Multi returns a reporter that fans each event out to every given
// reporter, in order. A nil entry is skipped.
func Multi(reps ...tend.Reporter) tend.Reporter {
	return multi(reps)
}

type multi []tend.Reporter

func (m multi) Report(ev tend.Event) {
	for _, rep := range m {
		if rep != nil {
			rep.Report(ev)
		}
	}
}
