// Package todo defines the to-do entity and the pure helpers that operate on
// ordered to-do sequences.
package todo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-stream/internal/domain"
)

// ToDo is a user-defined task intended to be done. Values are immutable once
// created; equality is structural, so two to-dos are equal iff ID, Title and
// IsDone all match.
type ToDo struct {
	ID     uuid.UUID
	Title  string
	IsDone bool
}

// New creates a pending to-do with a freshly generated random ID.
func New(title string) ToDo {
	return ToDo{
		ID:    uuid.New(),
		Title: title,
	}
}

// Equal reports whether t and other hold the same values.
func (t ToDo) Equal(other ToDo) bool {
	return t == other
}

// Status derives the display status from the completion flag.
func (t ToDo) Status() Status {
	if t.IsDone {
		return StatusDone
	}
	return StatusPending
}

// Validate checks business rules for user-entered to-dos.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t ToDo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.ID == uuid.Nil {
		fields["id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
