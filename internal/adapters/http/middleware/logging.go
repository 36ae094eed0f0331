package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-stream/internal/platform/logging"
)

// Logging stores a request-scoped logger (tagged with the request and
// correlation IDs) in the context and logs one line per request once the
// handler returns. Server errors log at error, client errors at warn.
// Request headers are logged at debug with credentials redacted.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request headers", headerAttrs(r.Header)...)
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLogger.LogAttrs(ctx, levelForStatus(rec.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// headerAttrs flattens headers into attributes, replacing the values of
// logging.SensitiveHeaders.
func headerAttrs(h http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for name, vals := range h {
		value := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = logging.Redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}

