package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-stream/internal/domain"
	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

type createdMsg struct {
	todo todo.ToDo
	err  error
}

type removedMsg struct {
	id uuid.UUID
}

// Model is the bubbletea model for the to-do window: a title, the list, a
// separator and the entry field. It only renders snapshots it receives from
// the stream; mutations go through the service in commands.
type Model struct {
	ctx    context.Context //nolint:containedctx // commands outlive Update calls
	svc    ports.ToDoService
	logger *slog.Logger

	title  string
	todos  []todo.ToDo
	cursor int
	input  textinput.Model
	width  int
	errMsg string

	bridge *snapshotBridge
}

// NewModel builds a Model subscribed to svc's stream. The current snapshot is
// shown immediately. Call Close when the program has exited.
func NewModel(ctx context.Context, svc ports.ToDoService, opts ...Option) *Model {
	c := newConfig(opts...)

	m := &Model{
		ctx:    ctx,
		svc:    svc,
		logger: c.logger,
		title:  c.title,
		input:  NewTextEdit(c.placeholder),
	}
	m.bridge = newSnapshotBridge(svc.Stream())
	m.todos = svc.Stream().Latest()
	return m
}

// Close unsubscribes the model from the stream.
func (m *Model) Close() {
	m.bridge.close()
}

// Todos returns the snapshot currently rendered.
func (m *Model) Todos() []todo.ToDo {
	return m.todos
}

// Cursor returns the index of the selected to-do.
func (m *Model) Cursor() int {
	return m.cursor
}

// Input returns the entry field's current text.
func (m *Model) Input() string {
	return m.input.Value()
}

// Init starts listening for snapshots and blinking the caret.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.bridge.ch), textinput.Blink)
}

// Update handles key presses and snapshot delivery.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(0, msg.Width-lipgloss.Width(promptText)-1)
	case snapshotMsg:
		m.todos = msg.todos
		m.clampCursor()
		return m, waitForSnapshot(m.bridge.ch)
	case streamClosedMsg:
		return m, nil
	case createdMsg:
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
	case removedMsg:
		m.errMsg = ""
	default:
		// Caret blinks and pastes belong to the entry field.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m, m.submit()
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
	case tea.KeyCtrlD:
		return m, m.removeSelected()
	default:
		// Everything else edits the entry field, delete included.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit clears the field and creates a to-do from its text. Blank text is
// rejected without touching the repository.
func (m *Model) submit() tea.Cmd {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.errMsg = describeError(&domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}})
		return nil
	}
	m.input.Reset()

	ctx, svc, logger := m.ctx, m.svc, m.logger
	return func() tea.Msg {
		td, err := svc.Create(ctx, text)
		if err != nil {
			logger.WarnContext(ctx, "create todo failed", slog.Any("error", err))
		}
		return createdMsg{todo: td, err: err}
	}
}

func (m *Model) removeSelected() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return nil
	}
	id := m.todos[m.cursor].ID

	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		svc.Remove(ctx, id)
		return removedMsg{id: id}
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.todos) {
		m.cursor = len(m.todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the window.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(RenderTitle(m.title))
	b.WriteString("\n\n")
	b.WriteString(RenderList(m.todos, m.cursor))
	b.WriteString("\n")
	b.WriteString(RenderSeparator(m.width))
	b.WriteString("\n")
	b.WriteString(RenderTextEdit(m.input, true))
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderSummary(m.todos))
	b.WriteString("\n")
	b.WriteString(renderHelp())
	b.WriteString("\n")
	return b.String()
}

func describeError(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		if msg, ok := verr.Fields["title"]; ok {
			return "Title " + msg
		}
	}
	return err.Error()
}
