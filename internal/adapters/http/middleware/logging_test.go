package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-stream/internal/platform/logging"
)

func TestLogging_CompletionRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error", status: http.StatusServiceUnavailable, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("hello"))
			}))

			serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/todos?status=done", http.NoBody))

			done := findRecord(t, logRecords(t, &buf), "request completed")
			assert.Equal(t, tt.wantLevel, done["level"])
			assert.Equal(t, http.MethodGet, done["method"])
			assert.Equal(t, "/api/v1/todos", done["path"])
			assert.InDelta(t, tt.status, done["status"], 0)
			assert.InDelta(t, 5, done["bytes"], 0)
			assert.Contains(t, done, "duration")
		})
	}
}

func TestLogging_StoresRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(jsonLogger(&buf))(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "listing todos")
		}),
	)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
	req.Header.Set("X-Request-ID", "req-7")
	req.Header.Set("X-Correlation-ID", "corr-7")
	serve(h, req)

	inner := findRecord(t, logRecords(t, &buf), "listing todos")
	assert.Equal(t, "req-7", inner["request_id"])
	assert.Equal(t, "corr-7", inner["correlation_id"])
}

func TestLogging_RedactsSensitiveHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
	req.Header.Set("Authorization", "Bearer live-token")
	req.Header.Set("Cookie", "session=abc")
	req.Header.Set("Accept", "application/json")
	serve(h, req)

	headers := findRecord(t, logRecords(t, &buf), "request headers")
	assert.Equal(t, logging.Redacted, headers["Authorization"])
	assert.Equal(t, logging.Redacted, headers["Cookie"])
	assert.Equal(t, "application/json", headers["Accept"])
	assert.NotContains(t, buf.String(), "live-token")
}

func TestLogging_HeadersSkippedAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody))

	recs := logRecords(t, &buf)
	assert.Len(t, recs, 1)
	assert.Equal(t, "request completed", recs[0]["msg"])
}
