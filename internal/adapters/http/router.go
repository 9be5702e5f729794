// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/dto"
	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/landing-directory/internal/domain"
)

const (
	apiPrefix    = "/api/"
	assetsPrefix = "/assets/"

	// allowedMethods is sent with every 405; all routes are read-only.
	allowedMethods = "GET, HEAD"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Site     *handlers.SiteHandler
	Landings *handlers.LandingHandler
	Health   *handlers.HealthHandler

	// Assets serves the embedded static files relative to /assets/.
	Assets http.Handler
}

// NewRouter creates an HTTP handler with all site, API, and health routes
// registered. Middleware is applied globally in the order given; trailing
// slashes are stripped before routing so /preview/x/ matches /preview/x, and
// HEAD is answered by the GET handler of the same path.
func NewRouter(routes Routes, middlewares ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}
	r.Use(chimw.StripSlashes)
	r.Use(chimw.GetHead)

	r.NotFound(routes.Site.NotFound)
	r.MethodNotAllowed(routes.Site.MethodNotAllowed)

	// Site pages.
	r.Get("/", routes.Site.Directory)
	r.Get("/preview/{slug}", routes.Site.Preview)
	r.Handle(assetsPrefix+"*", http.StripPrefix(assetsPrefix, routes.Assets))

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.NotFound(apiNotFound)
		r.MethodNotAllowed(apiMethodNotAllowed)

		r.Get("/landings", routes.Landings.ListLandings)
		r.Get("/landings/{slug}", routes.Landings.GetLanding)
	})

	return r
}

// NewErrorWriter returns the panic and timeout fallback: API paths get an RFC 9457
// problem response, everything else the site's HTML error page.
func NewErrorWriter(site *handlers.SiteHandler) middleware.ErrorWriter {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		site.WriteError(w, r, err)
	}
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteErrorResponse(w, r, domain.ErrNotFound)
}

func apiMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", allowedMethods)
	dto.WriteErrorResponse(w, r, dto.ErrMethodNotAllowed)
}
