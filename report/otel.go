package report

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xraph/tend"
)

// meterName is the instrumentation scope name for tend event metrics.
const meterName = "github.com/xraph/tend/report"

// Otel counts reported events through the OpenTelemetry metrics API. With
// no MeterProvider configured globally the instruments are noops and the
// reporter is free.
type Otel struct {
	events metric.Int64Counter
}

// NewOtel creates an Otel reporter using the global MeterProvider.
func NewOtel() *Otel {
	return NewOtelWithMeter(otel.Meter(meterName))
}

// NewOtelWithMeter creates an Otel reporter with the provided meter.
// This variant allows injecting a specific MeterProvider for testing.
func NewOtelWithMeter(meter metric.Meter) *Otel {
	events, err := meter.Int64Counter(
		"tend.events.reported",
		metric.WithDescription("Total number of reported job events"),
		metric.WithUnit("{event}"),
	)
	_ = err // noop fallback guaranteed by OTel API contract

	return &Otel{events: events}
}

// Report implements tend.Reporter.
func (o *Otel) Report(ev tend.Event) {
	attrs := []attribute.KeyValue{
		attribute.String("message", ev.Message),
	}
	if ev.Job != nil && ev.Job.Name() != "" {
		attrs = append(attrs, attribute.String("job_name", ev.Job.Name()))
	}

	o.events.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}
