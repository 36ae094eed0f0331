package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-stream/internal/adapters/http/dto"
)

// errPanic is what clients see in place of the recovered value.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500 problem
// response. http.ErrAbortHandler is re-raised so net/http can abort the
// connection quietly. Nothing is written if the handler already started the
// response.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				if !rec.wroteHeader {
					dto.WriteProblem(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
