package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxIDLength bounds caller-supplied IDs before they reach logs and spans.
	maxIDLength = 128
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// RequestIDFromContext returns the request ID, or "" outside the pipeline.
func RequestIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, requestIDKey)
}

// CorrelationIDFromContext returns the correlation ID, or "" outside the
// pipeline.
func CorrelationIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, correlationIDKey)
}

// RequestID reuses an inbound X-Request-ID or mints a UUID, then echoes it
// on the response.
func RequestID() Middleware {
	return propagateID(headerRequestID, requestIDKey, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses an inbound X-Correlation-ID and otherwise falls back
// to the request ID. It must run after RequestID.
func CorrelationID() Middleware {
	return propagateID(headerCorrelationID, correlationIDKey, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func propagateID(header string, key idKey, fallback func(*http.Request) string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if id == "" || len(id) > maxIDLength {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			ctx := context.WithValue(r.Context(), key, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func idFromContext(ctx context.Context, key idKey) string {
	id, _ := ctx.Value(key).(string)
	return id
}
