// Package http provides the diagnostics HTTP adapter: a read-only view of the
// to-do snapshot plus liveness and readiness checks.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/middleware"
)

// NewRouter registers the diagnostics routes behind the given middleware,
// outermost first (see middleware.Stack).
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	mws ...middleware.Middleware,
) http.Handler {
	r := chi.NewRouter()
	r.Use(mws...)

	// Health endpoints sit outside the versioned API.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes. Read-only: the terminal UI is the only writer.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/todos", todoHandler.ListTodos)
		r.Get("/todos/{id}", todoHandler.GetTodo)
	})

	return r
}
