package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/dto"
)

// ErrPanic is passed to the recovery fallback in place of the panic value,
// which is logged but never exposed to clients.
var ErrPanic = errors.New("internal server error")

// ErrorWriter writes an error response for err.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// Recovery returns middleware that recovers from panics in downstream handlers.
// The panic value and stack trace are logged, then onPanic writes the response
// with ErrPanic. A nil onPanic writes an RFC 9457 500 response. If headers
// were already sent, only the log entry is emitted.
func Recovery(logger *slog.Logger, onPanic ErrorWriter) func(http.Handler) http.Handler {
	if onPanic == nil {
		onPanic = dto.WriteErrorResponse
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					onPanic(rw, r, ErrPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
