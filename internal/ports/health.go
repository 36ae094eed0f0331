package ports

import "context"

// HealthChecker is a component the readiness endpoint can ask about, such as
// the to-do repository.
type HealthChecker interface {
	// Name keys the component in readiness output ("todo-repository").
	Name() string

	// HealthCheck returns nil while the component can serve, and otherwise
	// the reason it cannot.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them on demand.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and keys the results by Name. A nil value
	// means healthy. Checkers sharing a name overwrite each other.
	CheckAll(ctx context.Context) map[string]error
}
