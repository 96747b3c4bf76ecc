package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/xraph/tend"
	"github.com/xraph/tend/report"
)

// fakePublisher records published messages without a Redis server.
type fakePublisher struct {
	channels []string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.channels = append(f.channels, channel)
	f.payloads = append(f.payloads, message.([]byte))
	return redis.NewIntResult(1, nil)
}

func TestRedis_PublishesRecord(t *testing.T) {
	pub := &fakePublisher{}
	rep := report.NewRedis(pub)

	rep.Report(tend.Event{
		Message: tend.MessageProcessingFailed,
		Err:     errors.New("boom"),
	})

	if len(pub.payloads) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(pub.payloads))
	}
	if pub.channels[0] != "tend:events" {
		t.Errorf("channel = %q, want %q", pub.channels[0], "tend:events")
	}

	rec, err := (&report.JSONCodec{}).Decode(pub.payloads[0])
	if err != nil {
		t.Fatalf("decode published payload: %v", err)
	}
	if rec.Message != tend.MessageProcessingFailed {
		t.Errorf("Message = %q, want %q", rec.Message, tend.MessageProcessingFailed)
	}
	if rec.Error != "boom" {
		t.Errorf("Error = %q, want %q", rec.Error, "boom")
	}
}

func TestRedis_CustomChannelAndCodec(t *testing.T) {
	pub := &fakePublisher{}
	rep := report.NewRedis(pub,
		report.WithRedisChannel("failures"),
		report.WithRedisCodec(&report.MsgpackCodec{}),
	)

	rep.Report(tend.Event{Message: tend.MessageCloseTimeout, Err: tend.ErrCloseTimeout})

	if len(pub.payloads) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(pub.payloads))
	}
	if pub.channels[0] != "failures" {
		t.Errorf("channel = %q, want %q", pub.channels[0], "failures")
	}

	rec, err := (&report.MsgpackCodec{}).Decode(pub.payloads[0])
	if err != nil {
		t.Fatalf("decode published payload: %v", err)
	}
	if rec.Message != tend.MessageCloseTimeout {
		t.Errorf("Message = %q, want %q", rec.Message, tend.MessageCloseTimeout)
	}
}

func TestRedis_PublishErrorIsSwallowed(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	rep := report.NewRedis(pub)

	// Must not panic or block: reporting is fire-and-forget.
	rep.Report(tend.Event{Message: tend.MessageProcessingFailed, Err: errors.New("boom")})
}
