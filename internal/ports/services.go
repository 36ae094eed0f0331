package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
)

// ToDoService defines the service port for user-facing to-do operations.
// Implemented by the application layer; called by inbound adapters (the
// terminal UI and the diagnostics HTTP handlers).
type ToDoService interface {
	// Create builds a pending to-do from user-entered text and adds it to
	// the repository. Returns domain.ErrValidation if the title is blank.
	Create(ctx context.Context, title string) (todo.ToDo, error)

	// Remove deletes every to-do with the given ID. Never fails.
	Remove(ctx context.Context, id uuid.UUID)

	// Get returns the first to-do with the given ID in the latest snapshot,
	// or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (todo.ToDo, error)

	// List returns the latest snapshot narrowed by filter.
	List(ctx context.Context, filter todo.Filter) []todo.ToDo

	// Stream exposes the repository's snapshot stream for re-rendering.
	Stream() ToDoStream
}
