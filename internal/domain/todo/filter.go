package todo

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status Status
}

// Apply returns the to-dos matching the filter, in snapshot order.
// The input slice is not modified.
func (f Filter) Apply(todos []ToDo) []ToDo {
	if f.Status == "" {
		return Clone(todos)
	}
	out := make([]ToDo, 0, len(todos))
	for _, t := range todos {
		if t.Status() == f.Status {
			out = append(out, t)
		}
	}
	return out
}
