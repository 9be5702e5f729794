package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/landing-directory/internal/platform/httpclient"
)

const headerCorrelationID = "X-Correlation-ID"

type correlationIDKey struct{}

// WithCorrelationID stores id in ctx for this package and for httpclient, so
// the smoke checker and any other outbound call repeat it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID returns middleware that ties a request to a wider flow, such
// as one sitectl smoke run probing every landing. A valid incoming
// X-Correlation-ID is kept; otherwise the request ID stands in. Must run
// after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id := r.Header.Get(headerCorrelationID)
			if !validID(id) {
				id = RequestIDFromContext(ctx)
			}
			if id != "" {
				ctx = WithCorrelationID(ctx, id)
				w.Header().Set(headerCorrelationID, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
