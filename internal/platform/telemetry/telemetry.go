// Package telemetry sets up OpenTelemetry tracing and metrics for the
// process and defines the instruments the adapters record into.
//
//	p, err := telemetry.Setup(ctx, telemetry.Settings{
//	    ServiceName: "todo",
//	    Exporter:    telemetry.ExporterOTLP,
//	    Endpoint:    "http://otel-collector:4318",
//	})
//	defer p.Shutdown(ctx)
//	p.Metrics().RecordMutation(ctx, telemetry.OperationAdd, len(snapshot))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by Settings.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// AttrOperation values for repository mutations.
const (
	OperationAdd    = "add"
	OperationRemove = "remove"
)

// AttrResult values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Attribute keys shared by spans and metrics.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrResult     = attribute.Key("result")
	AttrOperation  = attribute.Key("todo.operation")
)

var (
	errUnsupportedExporter = errors.New("unsupported exporter")
	errMissingEndpoint     = errors.New("endpoint is required for otlp exporter")
	errShutdown            = errors.New("telemetry shut down")
)

// Settings selects where telemetry goes.
type Settings struct {
	ServiceName string
	Exporter    string
	// Endpoint is the OTLP/HTTP collector URL. An https scheme enables TLS.
	Endpoint string
	// Writer receives stdout-exporter output. Nil means os.Stdout, which the
	// terminal UI also draws on, so callers usually pass the log output.
	Writer io.Writer
}

func (s Settings) check() error {
	switch s.Exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if s.Endpoint == "" {
			return errMissingEndpoint
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnsupportedExporter, s.Exporter)
	}
}

// Providers owns the tracer and meter providers installed by Setup. It also
// reports as a health check named "telemetry" until it is shut down.
type Providers struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *Metrics
	down    atomic.Bool
}

// Setup builds tracer and meter providers for s, installs them and the W3C
// propagators as the otel globals, and registers the standard instruments.
func Setup(ctx context.Context, s Settings) (*Providers, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if s.Writer == nil {
		s.Writer = os.Stdout
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(s.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spans, err := newSpanExporter(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	readings, err := newMetricExporter(ctx, s)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
		meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
			sdkmetric.WithResource(res),
		),
	}

	p.metrics, err = NewMetrics(p.meter, s.ServiceName)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetMeterProvider(p.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Metrics returns the registered instruments. Nil-safe: a nil Providers
// yields nil Metrics, which every recorder accepts.
func (p *Providers) Metrics() *Metrics {
	if p == nil {
		return nil
	}
	return p.metrics
}

// Shutdown flushes and stops both providers. Nil-safe.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil || p.down.Swap(true) {
		return nil
	}
	var errs []error
	if err := p.tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
	}
	if err := p.meter.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
	}
	return errors.Join(errs...)
}

// Name implements ports.HealthChecker.
func (p *Providers) Name() string { return "telemetry" }

// HealthCheck fails once the providers have been shut down.
func (p *Providers) HealthCheck(_ context.Context) error {
	if p.down.Load() {
		return errShutdown
	}
	return nil
}

func newSpanExporter(ctx context.Context, s Settings) (sdktrace.SpanExporter, error) {
	if s.Exporter == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithWriter(s.Writer))
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(s.Endpoint))}
	if !isHTTPS(s.Endpoint) {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, s Settings) (sdkmetric.Exporter, error) {
	if s.Exporter == ExporterStdout {
		return stdoutmetric.New(stdoutmetric.WithWriter(s.Writer))
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(s.Endpoint))}
	if !isHTTPS(s.Endpoint) {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// hostPort reduces "http://otel-collector:4318" to "otel-collector:4318".
// Values that are not URLs pass through.
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	return err == nil && u.Scheme == "https"
}
