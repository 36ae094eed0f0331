// Package tui provides the terminal view of the to-do list. It renders every
// snapshot the repository stream publishes and turns key presses into
// application service calls.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

const (
	defaultTitle       = "To-dos"
	defaultPlaceholder = "What needs doing?"
)

// Option configures the TUI.
type Option func(*config)

type config struct {
	title       string
	placeholder string
	altScreen   bool
	logger      *slog.Logger
	progOpts    []tea.ProgramOption
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) {
		if title != "" {
			c.title = title
		}
	}
}

// WithPlaceholder sets the text shown in the empty entry field.
func WithPlaceholder(placeholder string) Option {
	return func(c *config) {
		c.placeholder = placeholder
	}
}

// WithAltScreen runs the program in the terminal's alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *config) {
		c.altScreen = enabled
	}
}

// WithLogger sets the logger for failed commands.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithProgramOptions passes extra options to the bubbletea program, such as
// tea.WithInput and tea.WithOutput.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(c *config) {
		c.progOpts = append(c.progOpts, opts...)
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		title:       defaultTitle,
		placeholder: defaultPlaceholder,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run starts the TUI and blocks until the user quits or ctx is canceled.
// Cancellation is not reported as an error.
func Run(ctx context.Context, svc ports.ToDoService, opts ...Option) error {
	c := newConfig(opts...)

	model := NewModel(ctx, svc, opts...)
	defer model.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	progOpts = append(progOpts, c.progOpts...)

	program := tea.NewProgram(model, progOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
