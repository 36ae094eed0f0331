// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-stream/internal/domain"
	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

// Compile-time check that ToDoService implements ports.ToDoService.
var _ ports.ToDoService = (*ToDoService)(nil)

// ToDoService implements ports.ToDoService on top of a ToDoRepository. It turns
// user-entered text into validated to-dos and logs every use case; the
// repository stays responsible for state and broadcasting.
type ToDoService struct {
	repo   ports.ToDoRepository
	logger *slog.Logger
}

// NewToDoService creates a ToDoService. A nil logger discards output.
func NewToDoService(repo ports.ToDoRepository, logger *slog.Logger) *ToDoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ToDoService{
		repo:   repo,
		logger: logger,
	}
}

// Create trims title, validates it and adds a new pending to-do.
func (s *ToDoService) Create(ctx context.Context, title string) (todo.ToDo, error) {
	td := todo.New(strings.TrimSpace(title))

	if err := td.Validate(); err != nil {
		s.logger.InfoContext(ctx, "rejected todo",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return todo.ToDo{}, err
	}

	s.repo.Add(ctx, td)

	s.logger.InfoContext(ctx, "created todo", slog.String("todo_id", td.ID.String()))
	return td, nil
}

// Remove deletes every to-do with the given id.
func (s *ToDoService) Remove(ctx context.Context, id uuid.UUID) {
	s.logger.InfoContext(ctx, "removing todo", slog.String("todo_id", id.String()))
	s.repo.Remove(ctx, id)
}

// Get returns the first to-do with the given id in the latest snapshot.
func (s *ToDoService) Get(_ context.Context, id uuid.UUID) (todo.ToDo, error) {
	for _, td := range s.repo.Stream().Latest() {
		if td.ID == id {
			return td, nil
		}
	}
	return todo.ToDo{}, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
}

// List returns the latest snapshot narrowed by filter.
func (s *ToDoService) List(_ context.Context, filter todo.Filter) []todo.ToDo {
	return filter.Apply(s.repo.Stream().Latest())
}

// Stream exposes the repository's snapshot stream.
func (s *ToDoService) Stream() ports.ToDoStream {
	return s.repo.Stream()
}
