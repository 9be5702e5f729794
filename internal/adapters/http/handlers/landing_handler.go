package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/dto"
	"github.com/jsamuelsen11/landing-directory/internal/ports"
)

// LandingHandler serves the read-only landing JSON API.
type LandingHandler struct {
	svc ports.PreviewService
}

// NewLandingHandler creates a new LandingHandler with the given service port.
func NewLandingHandler(svc ports.PreviewService) *LandingHandler {
	return &LandingHandler{svc: svc}
}

// ListLandings handles GET /api/v1/landings.
func (h *LandingHandler) ListLandings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToLandingListResponse(h.svc.Directory(r.Context())))
}

// GetLanding handles GET /api/v1/landings/{slug}.
func (h *LandingHandler) GetLanding(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Describe(r.Context(), slugFromPath(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLandingResponse(&s))
}
