package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "swap-sentinel"

// Metrics holds all OTEL metric instruments for swap-sentinel.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// Collision resolutions (partitioned by outcome + strategy via attributes)
	Resolutions metric.Int64Counter

	// Session lookups (partitioned by strategy + result: found, notfound, error)
	Lookups        metric.Int64Counter
	LookupDuration metric.Int64Histogram

	// Focus attempts that failed (best-effort, never fatal)
	FocusFailures metric.Int64Counter

	// Stale markers deleted on the discard path
	MarkerDeletions metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Resolutions, err = meter.Int64Counter("resolutions.total",
		metric.WithDescription("Total swap-marker collisions resolved, partitioned by outcome and strategy"))
	if err != nil {
		return nil, err
	}

	m.Lookups, err = meter.Int64Counter("lookups.total",
		metric.WithDescription("Total active-session lookups, partitioned by strategy and result (found, notfound, error)"))
	if err != nil {
		return nil, err
	}

	m.LookupDuration, err = meter.Int64Histogram("lookup.duration",
		metric.WithDescription("Wall-clock duration of active-session lookups"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	m.FocusFailures, err = meter.Int64Counter("focus.failures",
		metric.WithDescription("Number of window focus attempts that failed"))
	if err != nil {
		return nil, err
	}

	m.MarkerDeletions, err = meter.Int64Counter("markers.deleted",
		metric.WithDescription("Number of stale swap markers deleted"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordResolution records a resolved collision.
func (m *Metrics) RecordResolution(ctx context.Context, outcome, strategy string) {
	if m == nil {
		return
	}
	m.Resolutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("resolution.outcome", outcome),
		attribute.String("resolution.strategy", strategy),
	))
}

// RecordLookup records an active-session lookup with its result and duration.
func (m *Metrics) RecordLookup(ctx context.Context, strategy, result string, durationMs int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("lookup.strategy", strategy),
		attribute.String("lookup.result", result),
	)
	m.Lookups.Add(ctx, 1, attrs)
	m.LookupDuration.Record(ctx, durationMs, attrs)
}

// RecordFocusFailure records a failed window focus attempt.
func (m *Metrics) RecordFocusFailure(ctx context.Context, strategy string) {
	if m == nil {
		return
	}
	m.FocusFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("focus.strategy", strategy),
	))
}

// RecordMarkerDeletion records a stale marker deletion.
func (m *Metrics) RecordMarkerDeletion(ctx context.Context) {
	if m == nil {
		return
	}
	m.MarkerDeletions.Add(ctx, 1)
}
