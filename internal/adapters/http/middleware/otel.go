package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/landing-directory/internal/platform/telemetry"
)

const (
	tracerName     = "landing-directory/http"
	unmatchedRoute = "unmatched"
	slugParam      = "slug"
)

// OpenTelemetry traces each request as a server span continuing any W3C
// trace context in the headers, and records the server request metrics when
// metrics is non-nil.
//
// After routing the span is renamed to the chi pattern, so every preview is
// "HTTP GET /preview/{slug}" and shares one metric series. The slug itself
// is kept on the span only, since unknown slugs are unbounded. Requests no
// route matched are reported as "unmatched".
func OpenTelemetry(metrics *telemetry.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()
			if id := RequestIDFromContext(ctx); id != "" {
				span.SetAttributes(attribute.String("request.id", id))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
				if slug := rctx.URLParam(slugParam); slug != "" {
					span.SetAttributes(telemetry.AttrSlug.String(slug))
				}
			}

			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				attribute.Int("http.status_code", rw.statusCode),
				attribute.String("http.route", route),
			)
			if rw.statusCode >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.statusCode))
			}

			recordServer(ctx, metrics, r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}

func recordServer(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrResult.String(result),
	)
	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
