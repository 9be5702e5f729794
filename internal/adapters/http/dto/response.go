// Package dto provides HTTP response data transfer objects and RFC 9457
// Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"slices"

	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
)

// LandingResponse represents a single landing page in HTTP responses.
type LandingResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Accent      string   `json:"accent"`
	Tags        []string `json:"tags"`
	PreviewURL  string   `json:"preview_url"`
}

// LandingListResponse represents the landing directory in HTTP responses.
type LandingListResponse struct {
	Landings []LandingResponse `json:"landings"`
	Count    int               `json:"count"`
}

// ToLandingResponse converts a landing summary to an HTTP response DTO.
func ToLandingResponse(s *landing.Summary) LandingResponse {
	tags := slices.Clone(s.Tags)
	if tags == nil {
		tags = []string{}
	}
	return LandingResponse{
		Slug:        s.Slug,
		Title:       s.Title,
		Description: s.Description,
		Accent:      s.Accent.String(),
		Tags:        tags,
		PreviewURL:  "/preview/" + s.Slug,
	}
}

// ToLandingListResponse converts landing summaries to an HTTP list response.
func ToLandingListResponse(summaries []landing.Summary) LandingListResponse {
	items := make([]LandingResponse, len(summaries))
	for i := range summaries {
		items[i] = ToLandingResponse(&summaries[i])
	}
	return LandingListResponse{
		Landings: items,
		Count:    len(items),
	}
}

// Health statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints. Checks
// maps each checker name to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse folds health check results into a readiness response.
// The second result reports whether every check passed.
func ToHealthResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{
		Status: HealthReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthNotReady
			continue
		}
		resp.Checks[name] = HealthOK
	}
	return resp, resp.Status == HealthReady
}
