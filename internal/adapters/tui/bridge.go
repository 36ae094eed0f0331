package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
	"github.com/jsamuelsen11/todo-stream/internal/platform/broadcast"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

type snapshotMsg struct {
	todos []todo.ToDo
}

type streamClosedMsg struct{}

// snapshotBridge moves snapshots from the publishing goroutine into the
// bubbletea event loop. The channel holds at most one pending snapshot and a
// newer one replaces it, so the publisher never blocks on a slow renderer.
type snapshotBridge struct {
	mu     sync.Mutex
	ch     chan []todo.ToDo
	closed bool
	sub    *broadcast.Subscription
}

func newSnapshotBridge(stream ports.ToDoStream) *snapshotBridge {
	b := &snapshotBridge{ch: make(chan []todo.ToDo, 1)}
	b.sub = stream.Subscribe(b.push)
	return b
}

// push runs on the mutating goroutine. Only pushers take mu, so after the
// drain the buffer slot is free for the send.
func (b *snapshotBridge) push(todos []todo.ToDo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	select {
	case <-b.ch:
	default:
	}
	b.ch <- todos
}

func (b *snapshotBridge) close() {
	if b.sub != nil {
		b.sub.Unsubscribe()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.ch)
	}
}

func waitForSnapshot(ch <-chan []todo.ToDo) tea.Cmd {
	return func() tea.Msg {
		todos, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return snapshotMsg{todos: todos}
	}
}
