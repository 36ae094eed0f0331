package todo

import (
	"fmt"
	"strings"
)

// Status is the display state of a ToDo, derived from its completion flag.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// Statuses lists every valid Status in display order.
var Statuses = []Status{StatusPending, StatusDone}

// ParseStatus resolves a status name, ignoring case and surrounding space.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// IsValid reports whether s is one of Statuses.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusDone
}

func (s Status) String() string {
	return string(s)
}
