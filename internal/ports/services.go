package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
)

// PreviewService defines the service port for browsing and previewing
// landing pages. Implemented by the application layer; called by inbound
// adapters (HTTP handlers, the static exporter, the CLI).
type PreviewService interface {
	// Directory returns the public projection of every landing in display
	// order.
	Directory(ctx context.Context) []landing.Summary

	// Slugs returns every valid preview slug in display order.
	Slugs(ctx context.Context) []string

	// Describe returns the public projection of a single landing.
	// Returns landing.ErrUnknownSlug (wrapping domain.ErrNotFound) on a miss.
	Describe(ctx context.Context, slug string) (landing.Summary, error)

	// Preview resolves slug and awaits its loader exactly once.
	// Returns landing.ErrUnknownSlug without invoking any loader on a miss.
	Preview(ctx context.Context, slug string) (landing.View, error)
}

// StatusPage describes an error page such as 404 or 500.
type StatusPage struct {
	Code    int
	Title   string
	Message string
}

// PageRenderer renders the site pages that are not landings.
type PageRenderer interface {
	// RenderDirectory writes the directory grid for the given landings.
	RenderDirectory(ctx context.Context, w io.Writer, landings []landing.Summary) error

	// RenderStatus writes an error page. The caller sets the status code.
	RenderStatus(ctx context.Context, w io.Writer, page StatusPage) error
}
