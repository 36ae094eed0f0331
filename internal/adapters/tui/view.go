package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todo-stream/internal/domain/todo"
)

const (
	emptyListText   = "No to-dos yet."
	promptText      = "> "
	defaultSepWidth = 40
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle    = lipgloss.NewStyle().Bold(true)
	doneStyle        = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	emptyStyle       = lipgloss.NewStyle().Faint(true).Italic(true)
	separatorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	promptStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	placeholderStyle = lipgloss.NewStyle().Faint(true)
	caretStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

// RenderTitle renders the window title.
func RenderTitle(title string) string {
	return titleStyle.Render(title)
}

// RenderList renders todos as a vertical list of titles in sequence order.
// The entry at cursor is marked; a cursor outside the list marks nothing.
func RenderList(todos []todo.ToDo, cursor int) string {
	if len(todos) == 0 {
		return emptyStyle.Render(emptyListText)
	}

	lines := make([]string, 0, len(todos))
	for i, t := range todos {
		marker := "  "
		if i == cursor {
			marker = "› "
		}

		check := "[ ]"
		title := t.Title
		if t.IsDone {
			check = "[x]"
			title = doneStyle.Render(title)
		}

		line := fmt.Sprintf("%s%s %s", marker, check, title)
		if i == cursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderSeparator renders a horizontal rule of the given width.
func RenderSeparator(width int) string {
	if width <= 0 {
		width = defaultSepWidth
	}
	return separatorStyle.Render(strings.Repeat("─", width))
}

// NewTextEdit returns a focused single-line entry field styled for the
// to-do window.
func NewTextEdit(placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = promptText
	input.PromptStyle = promptStyle
	input.Placeholder = placeholder
	input.PlaceholderStyle = placeholderStyle
	input.Cursor.Style = caretStyle
	input.Focus()
	return input
}

// RenderTextEdit renders the entry field behind its prompt. An empty field
// shows its placeholder; the caret is only drawn when focused.
func RenderTextEdit(input textinput.Model, focused bool) string {
	if focused {
		input.Focus()
	} else {
		input.Blur()
	}
	return input.View()
}

// RenderSummary renders the "n to-dos, m done" status line.
func RenderSummary(todos []todo.ToDo) string {
	return helpStyle.Render(fmt.Sprintf("%d to-dos, %d done", len(todos), todo.CountDone(todos)))
}

func renderError(msg string) string {
	return errorStyle.Render(msg)
}

func renderHelp() string {
	return helpStyle.Render("enter add • ctrl+d remove • ↑/↓ select • esc quit")
}
