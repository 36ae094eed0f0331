package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/todo-stream/internal/domain"
	"github.com/jsamuelsen11/todo-stream/internal/platform/logging"
)

const (
	problemContentType = "application/problem+json"
	problemTypeBlank   = "about:blank"
)

// Problem is an RFC 9457 problem details body.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []ProblemField `json:"errors,omitempty"`
}

// ProblemField is one rejected input inside a validation Problem.
type ProblemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewProblem describes err for the request that produced it. Validation
// errors list each rejected field, sorted by location.
func NewProblem(r *http.Request, err error) Problem {
	status := statusFor(err)
	p := Problem{
		Type:     problemTypeBlank,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, loc := range slices.Sorted(maps.Keys(verr.Fields)) {
			p.Errors = append(p.Errors, ProblemField{Location: loc, Message: verr.Fields[loc]})
		}
	}
	return p
}

// WriteProblem sends err as an application/problem+json response.
func WriteProblem(w http.ResponseWriter, r *http.Request, err error) {
	p := NewProblem(r, err)

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(p.Status)
	if encErr := json.NewEncoder(w).Encode(p); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode problem",
			slog.Int("status", p.Status),
			slog.Any("error", encErr),
		)
	}
}

// statusFor maps domain sentinels to HTTP statuses. Unrecognized errors are
// internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
