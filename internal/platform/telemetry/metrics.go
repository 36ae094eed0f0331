package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded by the diagnostics server and the
// repository. A nil *Metrics records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	MutationTotal         metric.Int64Counter
	SnapshotSize          metric.Int64Histogram
}

// NewMetrics registers the instruments on a meter named serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}
	var err error

	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of diagnostics HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("http.server.request.duration", err)
	}

	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Diagnostics HTTP requests served"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, instrumentErr("http.server.request.total", err)
	}

	if m.MutationTotal, err = meter.Int64Counter("todo.repository.mutations",
		metric.WithDescription("Repository mutations applied"),
		metric.WithUnit("{mutation}"),
	); err != nil {
		return nil, instrumentErr("todo.repository.mutations", err)
	}

	if m.SnapshotSize, err = meter.Int64Histogram("todo.repository.snapshot.size",
		metric.WithDescription("To-dos in each published snapshot"),
		metric.WithUnit("{todo}"),
	); err != nil {
		return nil, instrumentErr("todo.repository.snapshot.size", err)
	}

	return m, nil
}

// RecordMutation counts one repository mutation and the size of the
// snapshot it published.
func (m *Metrics) RecordMutation(ctx context.Context, operation string, size int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrOperation.String(operation))
	m.MutationTotal.Add(ctx, 1, attrs)
	m.SnapshotSize.Record(ctx, int64(size), attrs)
}

func instrumentErr(name string, err error) error {
	return fmt.Errorf("creating %s: %w", name, err)
}
