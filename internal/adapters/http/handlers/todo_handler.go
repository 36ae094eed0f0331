package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

// TodoHandler serves read-only views of the to-do snapshot.
type TodoHandler struct {
	svc ports.ToDoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.ToDoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	q, err := parseTodoFilter(r)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	todos := h.svc.List(r.Context(), q.Filter())

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(todos))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(&t))
}
