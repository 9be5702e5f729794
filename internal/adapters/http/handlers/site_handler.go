// Package handlers provides HTTP request handlers for the site pages, the
// landing JSON API, and health probes.
package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/dto"
	"github.com/jsamuelsen11/landing-directory/internal/platform/logging"
	"github.com/jsamuelsen11/landing-directory/internal/ports"
	"github.com/jsamuelsen11/landing-directory/internal/views"
)

// SiteHandler serves the HTML pages: the directory, landing previews, and
// status pages.
type SiteHandler struct {
	svc   ports.PreviewService
	pages ports.PageRenderer
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(svc ports.PreviewService, pages ports.PageRenderer) *SiteHandler {
	return &SiteHandler{svc: svc, pages: pages}
}

// Directory handles GET /.
func (h *SiteHandler) Directory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var buf bytes.Buffer
	if err := h.pages.RenderDirectory(ctx, &buf, h.svc.Directory(ctx)); err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeHTML(w, http.StatusOK, &buf)
}

// Preview handles GET /preview/{slug}. The view is rendered into a buffer
// first so a failure never emits partial landing markup.
func (h *SiteHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.svc.Preview(ctx, slugFromPath(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := view.Render(ctx, &buf); err != nil {
		h.WriteError(w, r, err)
		return
	}

	writeHTML(w, http.StatusOK, &buf)
}

// NotFound answers unmatched routes with the site's not-found page.
func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, r, views.NotFoundPage())
}

// MethodNotAllowed answers known paths requested with an unsupported method.
func (h *SiteHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	h.writeStatus(w, r, ports.StatusPage{
		Code:    http.StatusMethodNotAllowed,
		Title:   "Method not allowed",
		Message: "This page only supports GET and HEAD requests.",
	})
}

// WriteError maps err to a status page: not-found errors get the 404 page,
// timeouts the 504 page, everything else the 500 page. It matches
// middleware.ErrorWriter so the recovery and timeout middleware can use it
// for site routes.
func (h *SiteHandler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch dto.StatusFor(err) {
	case http.StatusNotFound:
		h.writeStatus(w, r, views.NotFoundPage())
		return
	case http.StatusGatewayTimeout:
		h.writeStatus(w, r, views.TimeoutPage())
		return
	}

	logging.FromContext(r.Context()).ErrorContext(r.Context(), "rendering page failed",
		slog.String("operation", "SiteHandler.WriteError"),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	h.writeStatus(w, r, views.ErrorPage())
}

// writeStatus renders page with its status code, falling back to plain text
// when the status template itself fails.
func (h *SiteHandler) writeStatus(w http.ResponseWriter, r *http.Request, page ports.StatusPage) {
	var buf bytes.Buffer
	if err := h.pages.RenderStatus(r.Context(), &buf, page); err != nil {
		if !errors.Is(err, r.Context().Err()) {
			logging.FromContext(r.Context()).ErrorContext(r.Context(), "rendering status page failed",
				slog.Int("status", page.Code),
				slog.Any("error", err),
			)
		}
		http.Error(w, page.Title, page.Code)
		return
	}

	writeHTML(w, page.Code, &buf)
}
