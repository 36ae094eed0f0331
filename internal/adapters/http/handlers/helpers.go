package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-stream/internal/platform/logging"
)

// parseID extracts a UUID path parameter from the chi URL params.
func parseID(r *http.Request, param string) (uuid.UUID, error) {
	return dto.ParseTodoID(param, chi.URLParam(r, param))
}

// parseTodoFilter reads and validates the list query string.
func parseTodoFilter(r *http.Request) (dto.ListTodosQuery, error) {
	q := dto.ParseListTodosQuery(r)
	if err := q.Validate(); err != nil {
		return dto.ListTodosQuery{}, err
	}
	return q, nil
}

// writeJSON writes v as the JSON body. Encoding failures are logged on the
// request logger since the status line is already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}
