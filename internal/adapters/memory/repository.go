// Package memory provides the in-memory implementation of ports.ToDoRepository.
// State lives only in the process and is released with the repository.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-stream/internal/domain"
	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
	"github.com/jsamuelsen11/todo-stream/internal/platform/broadcast"
	"github.com/jsamuelsen11/todo-stream/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ToDoRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

const tracerName = "github.com/jsamuelsen11/todo-stream/internal/adapters/memory"

var errClosed = fmt.Errorf("repository closed: %w", domain.ErrUnavailable)

// Repository holds the authoritative to-do sequence and the broadcast its
// snapshots are published on. Mutations are serialized: each one changes the
// sequence and publishes the result before the next one starts.
type Repository struct {
	mu     sync.Mutex
	todos  []todo.ToDo
	stream *stream

	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used for mutation debug logs.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics enables mutation metrics. A nil value disables them.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(r *Repository) {
		r.metrics = metrics
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Repository) {
		if tp != nil {
			r.tracer = tp.Tracer(tracerName)
		}
	}
}

// New creates an empty repository with a fresh, subscriber-free stream.
func New(opts ...Option) *Repository {
	r := &Repository{
		todos:  []todo.ToDo{},
		stream: &stream{b: broadcast.New[[]todo.ToDo]()},
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stream returns the snapshot stream owned by the repository.
func (r *Repository) Stream() ports.ToDoStream {
	return r.stream
}

// Add appends td and publishes the updated sequence.
func (r *Repository) Add(ctx context.Context, td todo.ToDo) {
	ctx, span := r.tracer.Start(ctx, "todo.repository.add",
		trace.WithAttributes(attribute.String("todo.id", td.ID.String())),
	)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos = append(r.todos, td)
	r.publishLocked(ctx, telemetry.OperationAdd)

	r.logger.DebugContext(ctx, "todo added",
		slog.String("todo_id", td.ID.String()),
		slog.Int("count", len(r.todos)),
	)
}

// Remove deletes every to-do with the given id and publishes the result.
// Removing an unknown id publishes the unchanged sequence.
func (r *Repository) Remove(ctx context.Context, id uuid.UUID) {
	ctx, span := r.tracer.Start(ctx, "todo.repository.remove",
		trace.WithAttributes(attribute.String("todo.id", id.String())),
	)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.todos)
	r.todos = todo.WithoutID(r.todos, id)
	r.publishLocked(ctx, telemetry.OperationRemove)

	span.SetAttributes(attribute.Int("todo.removed", before-len(r.todos)))
	r.logger.DebugContext(ctx, "todo removed",
		slog.String("todo_id", id.String()),
		slog.Int("removed", before-len(r.todos)),
		slog.Int("count", len(r.todos)),
	)
}

// Snapshot returns an independent copy of the current sequence.
func (r *Repository) Snapshot() []todo.ToDo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return todo.Clone(r.todos)
}

// Close drops every subscriber. Later mutations still update the sequence
// but notify nobody.
func (r *Repository) Close() {
	r.stream.b.Close()
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "todo-repository"
}

// HealthCheck reports the repository unhealthy once it has been closed.
func (r *Repository) HealthCheck(_ context.Context) error {
	if r.stream.b.Closed() {
		return errClosed
	}
	return nil
}

// publishLocked sends a copy of the sequence to every subscriber. The copy
// keeps later mutations from reaching snapshots subscribers already hold.
// Callers must hold r.mu.
func (r *Repository) publishLocked(ctx context.Context, operation string) {
	snapshot := todo.Clone(r.todos)
	r.stream.b.Publish(snapshot)
	r.metrics.RecordMutation(ctx, operation, len(snapshot))
}

// stream adapts the broadcast to ports.ToDoStream.
type stream struct {
	b *broadcast.Broadcast[[]todo.ToDo]
}

func (s *stream) Subscribe(fn func([]todo.ToDo)) *broadcast.Subscription {
	return s.b.Subscribe(fn)
}

func (s *stream) Latest() []todo.ToDo {
	if v, ok := s.b.Latest(); ok {
		return v
	}
	return []todo.ToDo{}
}
