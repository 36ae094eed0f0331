package dto

// Health endpoint statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints. Checks is
// only set on readiness and maps each component to "ok" or its error text.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse folds health check results into a response and
// reports whether every component is healthy.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !healthy {
		resp.Status = HealthNotReady
	}
	return resp, healthy
}
