package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-stream/internal/domain"
	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
)

const msgInvalidUUID = "must be a valid UUID"

// ListTodosQuery is the query string of GET /api/v1/todos.
type ListTodosQuery struct {
	Status string
}

// ParseListTodosQuery reads the list query parameters from r.
func ParseListTodosQuery(r *http.Request) ListTodosQuery {
	return ListTodosQuery{Status: r.URL.Query().Get("status")}
}

// Validate rejects an unknown status with a *domain.ValidationError keyed
// "query.status". An absent status is valid and means no filtering.
func (q ListTodosQuery) Validate() error {
	if q.Status == "" {
		return nil
	}
	if _, err := todo.ParseStatus(q.Status); err != nil {
		return &domain.ValidationError{Fields: map[string]string{
			"query.status": fmt.Sprintf("must be one of %s", strings.Join(statusNames(), ", ")),
		}}
	}
	return nil
}

// Filter converts the query to a domain filter. Call Validate first.
func (q ListTodosQuery) Filter() todo.Filter {
	st, _ := todo.ParseStatus(q.Status)
	return todo.Filter{Status: st}
}

func statusNames() []string {
	names := make([]string, len(todo.Statuses))
	for i, st := range todo.Statuses {
		names[i] = st.String()
	}
	return names
}

// ParseTodoID parses a to-do ID path parameter.
// Returns a *domain.ValidationError if raw is not a UUID.
func ParseTodoID(param, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{"path." + param: msgInvalidUUID},
		}
	}
	return id, nil
}
