package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/dto"
	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/middleware"
)

func TestTimeout_PassesThroughFastHandlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "explicit status and header",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Cache-Control", "no-store")
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("missing"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "missing",
			wantHeader: "no-store",
		},
		{
			name: "implicit 200 on write",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<main>directory</main>"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "<main>directory</main>",
		},
		{
			name:       "no output",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(time.Second, nil)(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("Cache-Control"); got != tt.wantHeader {
				t.Errorf("Cache-Control = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestTimeout_ContextCarriesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Timeout(time.Second, nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if !hasDeadline {
		t.Error("handler context has no deadline")
	}
}

func TestTimeout_DefaultsToProblemResponse(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(20*time.Millisecond, nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/landings", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	if ct := rec.Header().Get("Content-Type"); ct != dto.ProblemContentType {
		t.Errorf("Content-Type = %q, want %q", ct, dto.ProblemContentType)
	}
}

func TestTimeout_DropsPartialPage(t *testing.T) {
	t.Parallel()

	lateWrite := make(chan error, 1)
	var gotErr error
	onTimeout := func(w http.ResponseWriter, _ *http.Request, err error) {
		gotErr = err
		w.WriteHeader(http.StatusGatewayTimeout)
		_, _ = w.Write([]byte("timeout page"))
	}

	handler := middleware.Timeout(20*time.Millisecond, onTimeout)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Landing", "neural-pulse")
		_, _ = w.Write([]byte(`<main data-landing="neural-pulse">`))
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("</main>"))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview/neural-pulse", http.NoBody))

	if !errors.Is(gotErr, middleware.ErrTimeout) {
		t.Errorf("onTimeout err = %v, want ErrTimeout", gotErr)
	}
	if rec.Code != http.StatusGatewayTimeout || rec.Body.String() != "timeout page" {
		t.Errorf("response = %d %q, want 504 timeout page", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Landing") != "" {
		t.Error("header from the abandoned page leaked into the timeout reply")
	}
	if err := <-lateWrite; !errors.Is(err, http.ErrHandlerTimeout) {
		t.Errorf("late write error = %v, want %v", err, http.ErrHandlerTimeout)
	}
}

func TestTimeout_PropagatesPanicToRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Recovery(testLogger(&buf), nil)(
		middleware.Timeout(time.Second, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("template exploded")
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(buf.String(), "template exploded") {
		t.Errorf("recovery log missing panic value, got: %s", buf.String())
	}
}
