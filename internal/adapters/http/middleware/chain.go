package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/landing-directory/internal/platform/telemetry"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// Chain composes middlewares so the first one is outermost:
// Chain(a, b)(h) == a(b(h)).
func Chain(middlewares ...Middleware) Middleware {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Pipeline describes the landing directory's inbound middleware.
type Pipeline struct {
	Logger *slog.Logger

	// Metrics may be nil; spans are still recorded.
	Metrics *telemetry.Metrics

	// OnError renders the reply after a recovered panic (ErrPanic) or a
	// missed deadline (ErrTimeout). Nil means RFC 9457 problem JSON.
	OnError ErrorWriter

	// RequestTimeout bounds every request. Zero disables the Timeout stage.
	RequestTimeout time.Duration

	// QuietPaths are logged at debug (see WithQuietPaths).
	QuietPaths []string
}

// Middleware returns the pipeline in serving order: Recovery, RequestID,
// CorrelationID, OpenTelemetry, Logging, Timeout.
func (p Pipeline) Middleware() []Middleware {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mws := []Middleware{
		Recovery(logger, p.OnError),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(p.Metrics),
		Logging(logger, WithQuietPaths(p.QuietPaths...)),
	}
	if p.RequestTimeout > 0 {
		mws = append(mws, Timeout(p.RequestTimeout, p.OnError))
	}
	return mws
}

// Wrap applies the pipeline to h.
func (p Pipeline) Wrap(h http.Handler) http.Handler {
	return Chain(p.Middleware()...)(h)
}
