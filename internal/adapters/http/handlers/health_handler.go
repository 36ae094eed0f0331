package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-stream/internal/platform/logging"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is proof enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every registered component
// is healthy, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, healthy := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))
	if healthy {
		writeJSON(w, r, http.StatusOK, resp)
		return
	}

	logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
		slog.Any("checks", resp.Checks),
	)
	writeJSON(w, r, http.StatusServiceUnavailable, resp)
}
