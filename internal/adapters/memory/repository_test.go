package memory_test

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/memory"
	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

// lastBroadcast runs action and returns the last snapshot the stream
// delivered while it ran. The bool is false if nothing was delivered.
func lastBroadcast(t *testing.T, stream ports.ToDoStream, action func()) ([]todo.ToDo, bool) {
	t.Helper()

	var (
		got       []todo.ToDo
		delivered bool
	)
	sub := stream.Subscribe(func(todos []todo.ToDo) {
		got = todos
		delivered = true
	})
	defer sub.Unsubscribe()

	action()
	return got, delivered
}

func study() todo.ToDo {
	return todo.ToDo{ID: uuid.New(), Title: "Study"}
}

func cleanRoom() todo.ToDo {
	return todo.ToDo{ID: uuid.New(), Title: "Clean room"}
}

func TestRepository_IsInitiallyEmpty(t *testing.T) {
	t.Parallel()

	repo := memory.New()

	latest := repo.Stream().Latest()
	require.NotNil(t, latest)
	assert.Empty(t, latest)
	assert.Empty(t, repo.Snapshot())
}

func TestRepository_AddBroadcasts(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	td := study()

	got, ok := lastBroadcast(t, repo.Stream(), func() {
		repo.Add(context.Background(), td)
	})

	require.True(t, ok, "Add did not broadcast")
	assert.Equal(t, []todo.ToDo{td}, got)
	assert.Equal(t, []todo.ToDo{td}, repo.Stream().Latest())
}

func TestRepository_AddPreservesOrder(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	t1, t2 := study(), cleanRoom()

	got, _ := lastBroadcast(t, repo.Stream(), func() {
		repo.Add(context.Background(), t1)
		repo.Add(context.Background(), t2)
	})

	assert.Equal(t, []todo.ToDo{t1, t2}, got)
}

func TestRepository_AddAllowsDuplicateIDs(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	td := study()

	repo.Add(context.Background(), td)
	repo.Add(context.Background(), td)

	assert.Equal(t, []todo.ToDo{td, td}, repo.Stream().Latest())
}

func TestRepository_Remove(t *testing.T) {
	t.Parallel()

	t1, t2, t3 := study(), cleanRoom(), todo.ToDo{ID: uuid.New(), Title: "Wash dishes", IsDone: true}

	tests := []struct {
		name    string
		initial []todo.ToDo
		id      uuid.UUID
		want    []todo.ToDo
	}{
		{
			name:    "removes by id preserving order",
			initial: []todo.ToDo{t1, t2, t3},
			id:      t2.ID,
			want:    []todo.ToDo{t1, t3},
		},
		{
			name:    "removes the only element",
			initial: []todo.ToDo{t3},
			id:      t3.ID,
			want:    []todo.ToDo{},
		},
		{
			name:    "removes every entry sharing the id",
			initial: []todo.ToDo{t1, t2, t1, t3},
			id:      t1.ID,
			want:    []todo.ToDo{t2, t3},
		},
		{
			name:    "absent id broadcasts unchanged sequence",
			initial: []todo.ToDo{t1},
			id:      uuid.New(),
			want:    []todo.ToDo{t1},
		},
		{
			name:    "empty repository broadcasts empty sequence",
			initial: nil,
			id:      uuid.New(),
			want:    []todo.ToDo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := memory.New()
			for _, td := range tt.initial {
				repo.Add(context.Background(), td)
			}

			got, ok := lastBroadcast(t, repo.Stream(), func() {
				repo.Remove(context.Background(), tt.id)
			})

			require.True(t, ok, "Remove did not broadcast")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_SnapshotsAreIndependent(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	t1, t2 := study(), cleanRoom()

	first, _ := lastBroadcast(t, repo.Stream(), func() {
		repo.Add(context.Background(), t1)
	})
	held := slices.Clone(first)

	repo.Add(context.Background(), t2)
	repo.Remove(context.Background(), t1.ID)

	assert.Equal(t, held, first, "previously received snapshot changed after later mutations")
	assert.Equal(t, []todo.ToDo{t2}, repo.Stream().Latest())
}

func TestRepository_SnapshotMethodIsACopy(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	td := study()
	repo.Add(context.Background(), td)

	snap := repo.Snapshot()
	snap[0].Title = "tampered"

	assert.Equal(t, "Study", repo.Snapshot()[0].Title)
}

func TestRepository_ConcreteScenario(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	ctx := context.Background()
	id1, id2 := uuid.New(), uuid.New()

	var history [][]todo.ToDo
	repo.Stream().Subscribe(func(todos []todo.ToDo) {
		history = append(history, todos)
	})

	repo.Add(ctx, todo.ToDo{ID: id1, Title: "Study", IsDone: false})
	repo.Add(ctx, todo.ToDo{ID: id2, Title: "Clean room", IsDone: false})
	repo.Remove(ctx, id1)

	want := [][]todo.ToDo{
		{{ID: id1, Title: "Study"}},
		{{ID: id1, Title: "Study"}, {ID: id2, Title: "Clean room"}},
		{{ID: id2, Title: "Clean room"}},
	}
	assert.Equal(t, want, history)
}

func TestRepository_SubscribersRunBeforeMutationReturns(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	var order []string

	repo.Stream().Subscribe(func([]todo.ToDo) { order = append(order, "first") })
	repo.Stream().Subscribe(func([]todo.ToDo) { order = append(order, "second") })

	repo.Add(context.Background(), study())
	order = append(order, "returned")

	assert.Equal(t, []string{"first", "second", "returned"}, order)
}

func TestRepository_NilSubscriberDoesNotBreakMutations(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	repo.Stream().Subscribe(nil)
	td := study()

	assert.NotPanics(t, func() {
		repo.Add(context.Background(), td)
		repo.Remove(context.Background(), td.ID)
	})
	assert.Empty(t, repo.Snapshot())
}

func TestRepository_StreamIsStable(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	assert.Same(t, repo.Stream(), repo.Stream())
}

func TestRepository_ConcurrentMutationsAreSerialized(t *testing.T) {
	t.Parallel()

	repo := memory.New()

	var (
		mu    sync.Mutex
		sizes []int
	)
	repo.Stream().Subscribe(func(todos []todo.ToDo) {
		mu.Lock()
		sizes = append(sizes, len(todos))
		mu.Unlock()
	})

	const writers = 50
	var wg sync.WaitGroup
	for range writers {
		wg.Go(func() {
			repo.Add(context.Background(), study())
		})
	}
	wg.Wait()

	assert.Len(t, repo.Stream().Latest(), writers)

	// Every publish corresponds to a distinct, complete repository state.
	slices.Sort(sizes)
	for i, n := range sizes {
		assert.Equal(t, i+1, n)
	}
}

func TestRepository_Close(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	var calls int
	repo.Stream().Subscribe(func([]todo.ToDo) { calls++ })

	require.NoError(t, repo.HealthCheck(context.Background()))
	assert.Equal(t, "todo-repository", repo.Name())

	repo.Close()
	repo.Add(context.Background(), study())

	assert.Zero(t, calls, "subscriber ran after Close")
	assert.Len(t, repo.Snapshot(), 1, "Add after Close must still update state")
	assert.Error(t, repo.HealthCheck(context.Background()))
}

func TestRepository_RecordsSpans(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	repo := memory.New(memory.WithTracerProvider(tp))
	td := study()
	repo.Add(context.Background(), td)
	repo.Remove(context.Background(), td.ID)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "todo.repository.add", spans[0].Name)
	assert.Equal(t, "todo.repository.remove", spans[1].Name)
}
