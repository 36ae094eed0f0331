package todo

import "github.com/google/uuid"

// Clone returns an independent copy of todos. The result is never nil, so an
// empty sequence is always observed as an empty, non-nil slice.
func Clone(todos []ToDo) []ToDo {
	out := make([]ToDo, len(todos))
	copy(out, todos)
	return out
}

// WithoutID removes every to-do whose ID equals id, preserving the relative
// order of the rest. The filtering happens in place: the returned slice shares
// the backing array of todos.
func WithoutID(todos []ToDo, id uuid.UUID) []ToDo {
	kept := todos[:0]
	for _, t := range todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	clear(todos[len(kept):])
	return kept
}

// CountDone returns the number of completed to-dos.
func CountDone(todos []ToDo) int {
	var n int
	for i := range todos {
		if todos[i].IsDone {
			n++
		}
	}
	return n
}
