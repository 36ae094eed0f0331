// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
)

// TodoResponse represents a single to-do in HTTP responses.
type TodoResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
	Status string `json:"status"`
}

// TodoListResponse represents a snapshot of to-dos in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
	Done  int            `json:"done"`
}

// ToTodoResponse converts a domain ToDo to an HTTP response DTO.
func ToTodoResponse(t *todo.ToDo) TodoResponse {
	return TodoResponse{
		ID:     t.ID.String(),
		Title:  t.Title,
		IsDone: t.IsDone,
		Status: t.Status().String(),
	}
}

// ToTodoListResponse converts a to-do sequence to an HTTP list response DTO,
// preserving order. An empty sequence encodes as an empty array, not null.
func ToTodoListResponse(todos []todo.ToDo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
		Done:  todo.CountDone(todos),
	}
}
