package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/memory"
	"github.com/jsamuelsen11/todo-stream/internal/domain"
	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
	"github.com/jsamuelsen11/todo-stream/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// --- NewToDoService ---

func TestNewToDoService_NilLogger(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockToDoRepository(t)

	svc := NewToDoService(repo, nil)
	if svc.logger == nil {
		t.Fatal("NewToDoService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Create ---

func TestToDoService_Create(t *testing.T) {
	t.Parallel()

	t.Run("adds trimmed pending todo", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockToDoRepository(t)
		svc := NewToDoService(repo, discardLogger())

		var added todo.ToDo
		repo.EXPECT().Add(mock.Anything, mock.AnythingOfType("todo.ToDo")).
			Run(func(_ context.Context, td todo.ToDo) { added = td }).
			Return()

		got, err := svc.Create(context.Background(), "  Buy milk \n")
		if err != nil {
			t.Fatalf("Create() error = %v, want nil", err)
		}
		if got.Title != "Buy milk" {
			t.Errorf("Create().Title = %q, want %q", got.Title, "Buy milk")
		}
		if got.IsDone {
			t.Error("Create().IsDone = true, want false")
		}
		if got.ID == uuid.Nil {
			t.Error("Create().ID is nil, want a fresh UUID")
		}
		if !added.Equal(got) {
			t.Errorf("repository received %+v, want %+v", added, got)
		}
	})

	t.Run("rejects blank title without adding", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockToDoRepository(t)
		svc := NewToDoService(repo, discardLogger())

		_, err := svc.Create(context.Background(), "   ")
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Create() error = %v, want ErrValidation", err)
		}

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Create() error type = %T, want *domain.ValidationError", err)
		}
		if _, ok := verr.Fields["title"]; !ok {
			t.Errorf("ValidationError.Fields = %v, want a title entry", verr.Fields)
		}
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("fresh ids for equal titles", func(t *testing.T) {
		t.Parallel()
		svc := NewToDoService(memory.New(), discardLogger())

		a, err := svc.Create(context.Background(), "same")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		b, err := svc.Create(context.Background(), "same")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if a.ID == b.ID {
			t.Errorf("Create() returned duplicate id %s", a.ID)
		}
		if n := len(svc.Stream().Latest()); n != 2 {
			t.Errorf("Latest() len = %d, want 2", n)
		}
	})
}

// --- Remove ---

func TestToDoService_Remove(t *testing.T) {
	t.Parallel()

	t.Run("delegates to repository", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockToDoRepository(t)
		svc := NewToDoService(repo, discardLogger())

		id := uuid.New()
		repo.EXPECT().Remove(mock.Anything, id).Return()

		svc.Remove(context.Background(), id)
	})

	t.Run("unknown id leaves sequence unchanged", func(t *testing.T) {
		t.Parallel()
		svc := NewToDoService(memory.New(), discardLogger())

		kept, err := svc.Create(context.Background(), "keep me")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		svc.Remove(context.Background(), uuid.New())

		got := svc.Stream().Latest()
		if len(got) != 1 || !got[0].Equal(kept) {
			t.Errorf("Latest() = %+v, want [%+v]", got, kept)
		}
	})
}

// --- List ---

func TestToDoService_List(t *testing.T) {
	t.Parallel()

	pending := todo.ToDo{ID: uuid.New(), Title: "open"}
	done := todo.ToDo{ID: uuid.New(), Title: "closed", IsDone: true}
	snapshot := []todo.ToDo{pending, done}

	tests := []struct {
		name   string
		filter todo.Filter
		want   []todo.ToDo
	}{
		{name: "no filter", filter: todo.Filter{}, want: []todo.ToDo{pending, done}},
		{name: "pending only", filter: todo.Filter{Status: todo.StatusPending}, want: []todo.ToDo{pending}},
		{name: "done only", filter: todo.Filter{Status: todo.StatusDone}, want: []todo.ToDo{done}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := mocks.NewMockToDoRepository(t)
			stream := mocks.NewMockToDoStream(t)
			repo.EXPECT().Stream().Return(stream)
			stream.EXPECT().Latest().Return(snapshot)

			svc := NewToDoService(repo, discardLogger())
			got := svc.List(context.Background(), tt.filter)

			if len(got) != len(tt.want) {
				t.Fatalf("List() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("List()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// --- Stream ---

func TestToDoService_Stream(t *testing.T) {
	t.Parallel()
	repo := memory.New()
	svc := NewToDoService(repo, discardLogger())

	var received [][]todo.ToDo
	sub := svc.Stream().Subscribe(func(ts []todo.ToDo) {
		received = append(received, ts)
	})
	defer sub.Unsubscribe()

	if _, err := svc.Create(context.Background(), "watch me"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(received) != 1 {
		t.Fatalf("subscriber received %d snapshots, want 1", len(received))
	}
	if len(received[0]) != 1 || received[0][0].Title != "watch me" {
		t.Errorf("snapshot = %+v, want one todo titled %q", received[0], "watch me")
	}
}

// --- Get ---

func TestToDoService_Get(t *testing.T) {
	t.Parallel()
	svc := NewToDoService(memory.New(), discardLogger())

	created, err := svc.Create(context.Background(), "find me")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if !got.Equal(created) {
		t.Errorf("Get() = %+v, want %+v", got, created)
	}

	_, err = svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get(unknown) error = %v, want ErrNotFound", err)
	}
}
