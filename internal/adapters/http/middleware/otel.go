package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-stream/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/todo-stream/internal/adapters/http/middleware"

// OpenTelemetry starts a server span per request, continuing any W3C trace
// context found in the headers, and records request metrics.
//
// Spans are named after the chi route pattern once routing has run, so
// "/api/v1/todos/{id}" yields one span name for every id. Requests that
// never matched a route keep the raw path. A nil metrics skips recording.
func OpenTelemetry(metrics *telemetry.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, spanName(r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := routePattern(r)
			if route != "" {
				span.SetName(spanName(r.Method, route))
				span.SetAttributes(telemetry.AttrHTTPRoute.String(route))
			}
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(rec.status))
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, rec.status, time.Since(start))
		})
	}
}

func spanName(method, path string) string {
	return "HTTP " + method + " " + path
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}

	result := telemetry.ResultSuccess
	if status >= http.StatusBadRequest {
		result = telemetry.ResultError
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}

// routePattern returns the matched chi route, or "" outside a chi router.
// chi fills the pattern in while routing, so it is only complete after the
// downstream handler returns.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
