package middleware

import (
	"fmt"
	"net/http"
	"time"
)

// CacheControl returns middleware that marks responses as publicly cacheable
// for maxAge. A zero maxAge sends no-cache. Used for the embedded static assets.
func CacheControl(maxAge time.Duration) func(http.Handler) http.Handler {
	value := "no-cache"
	if maxAge > 0 {
		value = fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}
