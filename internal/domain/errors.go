package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors, matched with errors.Is.
var (
	// ErrNotFound: no to-do has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrValidation: input was rejected; see ValidationError for the fields.
	ErrValidation = errors.New("validation error")
	// ErrUnavailable: the component has been shut down.
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError maps each rejected field to its message. It unwraps to
// ErrValidation. Its message lists the fields in sorted order so it is stable.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
