package views

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
	"github.com/jsamuelsen11/landing-directory/internal/ports"
)

// NotFoundPage is the page shown for unknown routes and slugs.
func NotFoundPage() ports.StatusPage {
	return ports.StatusPage{
		Code:    http.StatusNotFound,
		Title:   "Page not found",
		Message: "The page you are looking for does not exist.",
	}
}

// ErrorPage is the page shown when rendering fails.
func ErrorPage() ports.StatusPage {
	return ports.StatusPage{
		Code:    http.StatusInternalServerError,
		Title:   "Something went wrong",
		Message: "The page could not be rendered. Please try again later.",
	}
}

// TimeoutPage is the page shown when a request misses its deadline.
func TimeoutPage() ports.StatusPage {
	return ports.StatusPage{
		Code:    http.StatusGatewayTimeout,
		Title:   "Taking too long",
		Message: "The page did not finish in time. Please try again.",
	}
}

type landingCard struct {
	landing.Summary
	Href string
}

// Renderer renders the pages that are not landings: the directory and the
// status pages.
type Renderer struct {
	site      Site
	directory *template.Template
	status    *template.Template
}

// NewRenderer parses the directory and status templates.
func NewRenderer(site Site) (*Renderer, error) {
	directory, err := parsePage("directory.gohtml")
	if err != nil {
		return nil, err
	}
	status, err := parsePage("status.gohtml")
	if err != nil {
		return nil, err
	}
	return &Renderer{site: site, directory: directory, status: status}, nil
}

// PreviewPath is the route that renders the landing identified by slug.
func PreviewPath(slug string) string {
	return "/preview/" + slug
}

// RenderDirectory writes the directory grid for the given landings.
func (r *Renderer) RenderDirectory(ctx context.Context, w io.Writer, landings []landing.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cards := make([]landingCard, len(landings))
	for i, l := range landings {
		cards[i] = landingCard{Summary: l, Href: PreviewPath(l.Slug)}
	}

	data := pageData{Title: r.site.Name, Site: r.site, Landings: cards}
	if err := r.directory.ExecuteTemplate(w, baseName, data); err != nil {
		return fmt.Errorf("rendering directory: %w", err)
	}
	return nil
}

// RenderStatus writes a status page. The caller sets the HTTP status code.
func (r *Renderer) RenderStatus(ctx context.Context, w io.Writer, page ports.StatusPage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := pageData{
		Title:  fmt.Sprintf("%s | %s", page.Title, r.site.Name),
		Back:   true,
		Site:   r.site,
		Status: page,
	}
	if err := r.status.ExecuteTemplate(w, baseName, data); err != nil {
		return fmt.Errorf("rendering status %d: %w", page.Code, err)
	}
	return nil
}
