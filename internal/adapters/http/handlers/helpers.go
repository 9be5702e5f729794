package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	slugParam       = "slug"
	htmlContentType = "text/html; charset=utf-8"
)

// slugFromPath extracts the landing slug from the chi URL params.
func slugFromPath(r *http.Request) string {
	return chi.URLParam(r, slugParam)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeHTML writes a fully rendered HTML document with the given status code.
func writeHTML(w http.ResponseWriter, status int, body *bytes.Buffer) {
	w.Header().Set("Content-Type", htmlContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if _, err := body.WriteTo(w); err != nil {
		slog.Error("failed to write html response", slog.Any("error", err))
	}
}
