package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/dto"
	"github.com/jsamuelsen11/landing-directory/internal/domain"
)

// ErrTimeout is passed to the timeout fallback when a request misses its
// deadline.
var ErrTimeout = fmt.Errorf("request %w", domain.ErrTimeout)

// Timeout bounds each request to d. The handler sees the deadline on its
// context and runs on its own goroutine with the response buffered, so a page
// that is still rendering at the deadline is dropped whole and onTimeout
// writes the reply with ErrTimeout instead. A nil onTimeout writes a 504
// problem response.
//
// Writes after the deadline fail with http.ErrHandlerTimeout. A handler panic
// is re-raised on the serving goroutine for Recovery.
func Timeout(d time.Duration, onTimeout ErrorWriter) Middleware {
	if onTimeout == nil {
		onTimeout = dto.WriteErrorResponse
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				buf.copyTo(w)
			case <-ctx.Done():
				buf.expire()
				onTimeout(w, r, ErrTimeout)
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// to send it.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (b *bufferedWriter) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 && !b.expired {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

// expire rejects every later write.
func (b *bufferedWriter) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
}

// copyTo sends the buffered response. A handler that wrote nothing yields an
// implicit 200 from w.
func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
