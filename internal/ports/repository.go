package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
	"github.com/jsamuelsen11/todo-stream/internal/platform/broadcast"
)

// ToDoStream is the observable side of a ToDoRepository. Every value it
// delivers is a full snapshot of the repository's to-dos that is independent
// of later mutations. Subscribers must treat snapshots as read-only because a
// single snapshot is shared by all subscribers of one publish.
type ToDoStream interface {
	// Subscribe registers fn to receive every snapshot published after the
	// call. fn runs synchronously on the mutating goroutine and must not call
	// Add or Remove on the same repository.
	Subscribe(fn func([]todo.ToDo)) *broadcast.Subscription

	// Latest returns the most recent snapshot, or an empty non-nil slice if
	// nothing has been published yet.
	Latest() []todo.ToDo
}

// ToDoRepository is the storage port for to-dos. Implementations own the
// authoritative ordered sequence and publish a full snapshot after every
// mutation. None of the operations can fail: adding a duplicate ID and
// removing an unknown ID are both valid.
type ToDoRepository interface {
	// Stream returns the repository's snapshot stream. Idempotent and free
	// of side effects; every call returns the same logical stream.
	Stream() ToDoStream

	// Add appends td to the end of the sequence, then publishes the updated
	// sequence. Subscribers have run by the time Add returns.
	Add(ctx context.Context, td todo.ToDo)

	// Remove deletes every to-do whose ID equals id, preserving the order of
	// the others, then publishes the updated sequence. An unknown id still
	// publishes the unchanged sequence.
	Remove(ctx context.Context, id uuid.UUID)
}
