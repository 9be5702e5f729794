package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/landing-directory/internal/platform/logging"
)

// LoggingOption configures the Logging middleware.
type LoggingOption func(*loggingOptions)

type loggingOptions struct {
	quietPrefixes []string
}

// WithQuietPaths logs requests whose path starts with any prefix at debug
// instead of info. Probes and static assets use it to stay out of the way.
func WithQuietPaths(prefixes ...string) LoggingOption {
	return func(o *loggingOptions) {
		o.quietPrefixes = append(o.quietPrefixes, prefixes...)
	}
}

// Logging returns middleware that stores a child logger carrying request_id
// and correlation_id in the request context and logs each request's start
// and completion. Server errors are logged at error level. Query strings are
// logged through RedactQuery.
func Logging(logger *slog.Logger, opts ...LoggingOption) func(http.Handler) http.Handler {
	var o loggingOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			level := slog.LevelInfo
			if o.quiet(r.URL.Path) {
				level = slog.LevelDebug
			}

			reqAttrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			}
			if r.URL.RawQuery != "" {
				reqAttrs = append(reqAttrs, slog.String("query", RedactQuery(r.URL.RawQuery)))
			}
			child.Log(ctx, level, "request started", reqAttrs...)

			if child.Enabled(ctx, slog.LevelDebug) {
				var headers []any
				for _, a := range RedactHeaders(r.Header) {
					headers = append(headers, a)
				}
				child.DebugContext(ctx, "request headers", headers...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.Log(ctx, level, "request completed", append(reqAttrs,
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.String("content_type", rw.contentType),
				slog.Duration("duration", time.Since(start)),
			)...)
		})
	}
}

func (o loggingOptions) quiet(path string) bool {
	for _, prefix := range o.quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
