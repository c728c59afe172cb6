package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
)

// errPanic is what the client sees; the panic value itself stays in the logs.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500
// problem response. When the handler already started its response only the
// log entry is written. http.ErrAbortHandler is re-raised untouched so the
// server can abort the connection as it intends.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

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
					slog.Bool("response_started", rw.headerWritten),
					slog.String("stack", string(debug.Stack())),
				)
				if !rw.headerWritten {
					dto.WriteProblem(rw, r, http.StatusInternalServerError, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
