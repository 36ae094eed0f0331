// Package health collects the checks behind /health/ready: the to-do
// repository, which fails once closed, and the telemetry providers, which
// fail once shut down.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todo-stream/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds the components the diagnostics server reports readiness
// for. Checkers are snapshotted under the lock and run outside it, so a slow
// repository check never stalls startup registering telemetry.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns a Registry with nothing to report; the process registers its
// repository and, when telemetry is enabled, its providers.
func New() *Registry {
	return &Registry{}
}

// Register adds a component. When two share a name the later result is the
// one reported.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs each component's check in registration order and keys the
// results by component name. A nil error means the component is ready.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}
