// Package middleware provides the request pipeline of the diagnostics server.
//
// Stack assembles the pipeline outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Handler
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-stream/internal/platform/telemetry"
)

// Middleware wraps an http.Handler. It is an alias so chi's Use accepts it.
type Middleware = func(http.Handler) http.Handler

// Stack returns the standard diagnostics pipeline. A nil metrics disables
// request metrics but keeps tracing.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics) []Middleware {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return []Middleware{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
}
