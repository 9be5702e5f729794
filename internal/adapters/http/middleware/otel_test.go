package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/landing-directory/internal/platform/telemetry"
)

// These tests replace the global TracerProvider and do not run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return exporter
}

// siteRouter mounts the middleware on a chi router with a preview route
// answering status.
func siteRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.OpenTelemetry(metrics))
	r.Get("/preview/{slug}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func spanAttrs(s tracetest.SpanStub) map[string]any {
	attrs := make(map[string]any, len(s.Attributes))
	for _, a := range s.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.Handler
		method     string
		path       string
		wantName   string
		wantStatus int64
		wantSlug   string
		wantError  bool
	}{
		{
			name:       "preview named after route",
			handler:    siteRouter(nil, http.StatusOK),
			method:     http.MethodGet,
			path:       "/preview/neural-pulse",
			wantName:   "HTTP GET /preview/{slug}",
			wantStatus: http.StatusOK,
			wantSlug:   "neural-pulse",
		},
		{
			name:       "unknown slug keeps slug on span",
			handler:    siteRouter(nil, http.StatusNotFound),
			method:     http.MethodGet,
			path:       "/preview/does-not-exist",
			wantName:   "HTTP GET /preview/{slug}",
			wantStatus: http.StatusNotFound,
			wantSlug:   "does-not-exist",
		},
		{
			name:       "server error marks span",
			handler:    siteRouter(nil, http.StatusInternalServerError),
			method:     http.MethodGet,
			path:       "/preview/solar-flare",
			wantName:   "HTTP GET /preview/{slug}",
			wantStatus: http.StatusInternalServerError,
			wantSlug:   "solar-flare",
			wantError:  true,
		},
		{
			name: "outside a router is unmatched",
			handler: middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusMethodNotAllowed)
			})),
			method:     http.MethodPost,
			path:       "/",
			wantName:   "HTTP POST unmatched",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupTracer(t)

			tt.handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, http.NoBody))

			spans := exporter.GetSpans()
			if len(spans) != 1 {
				t.Fatalf("recorded %d spans, want 1", len(spans))
			}
			span := spans[0]
			attrs := spanAttrs(span)

			if span.Name != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tt.wantName)
			}
			if attrs["http.method"] != tt.method {
				t.Errorf("http.method = %v, want %s", attrs["http.method"], tt.method)
			}
			if attrs["http.status_code"] != tt.wantStatus {
				t.Errorf("http.status_code = %v, want %d", attrs["http.status_code"], tt.wantStatus)
			}
			if got, _ := attrs["landing.slug"].(string); got != tt.wantSlug {
				t.Errorf("landing.slug = %q, want %q", got, tt.wantSlug)
			}
			if (span.Status.Code == codes.Error) != tt.wantError {
				t.Errorf("span status = %v, want error %v", span.Status.Code, tt.wantError)
			}
		})
	}
}

func TestOpenTelemetry_TagsRequestID(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodGet, "/preview/neural-pulse", http.NoBody)
	req.Header.Set("X-Request-ID", "req-42")
	siteRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spanAttrs(spans[0])["request.id"]; got != "req-42" {
		t.Errorf("request.id = %v, want req-42", got)
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/preview/neural-pulse", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	siteRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace ID = %s, want %s", got, traceID)
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	setupTracer(t)

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "landing-directory")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	h := siteRouter(metrics, http.StatusOK)
	for _, slug := range []string{"neural-pulse", "minimal-terminal", "solar-flare"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/preview/"+slug, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) != 1 {
				t.Fatalf("request total = %#v, want one series for the route", m.Data)
			}
			if sum.DataPoints[0].Value != 3 {
				t.Errorf("request total = %d, want 3", sum.DataPoints[0].Value)
			}
			if route, _ := sum.DataPoints[0].Attributes.Value("http.route"); route.AsString() != "/preview/{slug}" {
				t.Errorf("http.route = %q, want /preview/{slug}", route.AsString())
			}
			return
		}
	}
	t.Fatal("http.server.request.total not recorded")
}
