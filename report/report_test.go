package report_test

import (
	"errors"
	"testing"

	"github.com/xraph/tend"
	"github.com/xraph/tend/report"
)

// recording is a test reporter that collects everything it receives.
type recording struct {
	events []tend.Event
}

func (r *recording) Report(ev tend.Event) {
	r.events = append(r.events, ev)
}

func TestMulti_FansOut(t *testing.T) {
	a := &recording{}
	b := &recording{}
	m := report.Multi(a, nil, b)

	ev := tend.Event{Message: tend.MessageProcessingFailed, Err: errors.New("boom")}
	m.Report(ev)

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("expected 1 event in each sink, got %d and %d", len(a.events), len(b.events))
	}
	if a.events[0].Message != tend.MessageProcessingFailed {
		t.Errorf("message = %q, want %q", a.events[0].Message, tend.MessageProcessingFailed)
	}
}

func TestMulti_Empty(t *testing.T) {
	m := report.Multi()
	m.Report(tend.Event{Message: tend.MessageCloseTimeout})
}

func TestRateLimited_DropsOverBurst(t *testing.T) {
	sink := &recording{}
	// Zero sustained rate: only the burst passes.
	rl := report.NewRateLimited(sink, 0, 3)

	for range 10 {
		rl.Report(tend.Event{Message: tend.MessageProcessingFailed})
	}

	if len(sink.events) != 3 {
		t.Errorf("expected 3 delivered events, got %d", len(sink.events))
	}
	if rl.Dropped() != 7 {
		t.Errorf("Dropped() = %d, want 7", rl.Dropped())
	}
}

func TestRateLimited_BurstFloor(t *testing.T) {
	sink := &recording{}
	rl := report.NewRateLimited(sink, 0, 0)

	rl.Report(tend.Event{Message: tend.MessageProcessingFailed})
	rl.Report(tend.Event{Message: tend.MessageProcessingFailed})

	if len(sink.events) != 1 {
		t.Errorf("expected 1 delivered event, got %d", len(sink.events))
	}
}
