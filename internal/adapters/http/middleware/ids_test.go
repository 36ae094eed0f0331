package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/middleware"
)

// captureIDs runs the ID middleware and returns what the handler saw.
func captureIDs(t *testing.T, req *http.Request) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	h := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
	})))
	rec = serve(h, req)
	return reqID, corrID, rec
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inbound string
		reuse   bool
	}{
		{name: "minted when absent", inbound: "", reuse: false},
		{name: "reused when present", inbound: "req-from-proxy", reuse: true},
		{name: "minted when oversized", inbound: strings.Repeat("x", 129), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
			if tt.inbound != "" {
				req.Header.Set("X-Request-ID", tt.inbound)
			}

			reqID, _, rec := captureIDs(t, req)

			assert.Equal(t, reqID, rec.Header().Get("X-Request-ID"))
			if tt.reuse {
				assert.Equal(t, tt.inbound, reqID)
				return
			}
			_, err := uuid.Parse(reqID)
			require.NoError(t, err, "minted id %q", reqID)
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	t.Run("falls back to request id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
		req.Header.Set("X-Request-ID", "req-1")

		_, corrID, rec := captureIDs(t, req)

		assert.Equal(t, "req-1", corrID)
		assert.Equal(t, "req-1", rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("keeps inbound value", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
		req.Header.Set("X-Request-ID", "req-1")
		req.Header.Set("X-Correlation-ID", "trace-abc")

		reqID, corrID, _ := captureIDs(t, req)

		assert.Equal(t, "req-1", reqID)
		assert.Equal(t, "trace-abc", corrID)
	})
}

func TestIDsFromContext_OutsidePipeline(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))
	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
}
