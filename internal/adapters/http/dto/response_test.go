package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/dto"
	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
)

func TestToLandingResponse(t *testing.T) {
	t.Parallel()

	s := landing.Summary{
		Slug:        "gradient-horizon",
		Title:       "Gradient Horizon",
		Description: "Premium warmth",
		Accent:      landing.AccentVioletRose,
		Tags:        []string{"premium", "gradient"},
	}

	got := dto.ToLandingResponse(&s)

	if got.Slug != s.Slug || got.Title != s.Title || got.Description != s.Description {
		t.Errorf("ToLandingResponse() = %+v", got)
	}
	if got.Accent != "violet-rose" {
		t.Errorf("Accent = %q, want violet-rose", got.Accent)
	}
	if got.PreviewURL != "/preview/gradient-horizon" {
		t.Errorf("PreviewURL = %q", got.PreviewURL)
	}

	got.Tags[0] = "mutated"
	if s.Tags[0] == "mutated" {
		t.Error("ToLandingResponse() shares Tags with the summary")
	}
}

func TestToLandingResponse_NilTagsEncodeAsArray(t *testing.T) {
	t.Parallel()

	got := dto.ToLandingResponse(&landing.Summary{Slug: "bare", Accent: landing.AccentTeal})

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := m["tags"].([]any); !ok {
		t.Errorf("tags = %v, want JSON array", m["tags"])
	}
}

func TestToLandingListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToLandingListResponse([]landing.Summary{
		{Slug: "neural-pulse", Accent: landing.AccentTeal},
		{Slug: "minimal-terminal", Accent: landing.AccentEmerald},
	})

	if got.Count != 2 || len(got.Landings) != 2 {
		t.Fatalf("Count = %d, len = %d, want 2", got.Count, len(got.Landings))
	}
	if got.Landings[1].Slug != "minimal-terminal" {
		t.Errorf("Landings[1].Slug = %q", got.Landings[1].Slug)
	}

	empty := dto.ToLandingListResponse(nil)
	if empty.Landings == nil || empty.Count != 0 {
		t.Errorf("ToLandingListResponse(nil) = %+v, want empty non-nil list", empty)
	}
}

func TestToHealthResponse(t *testing.T) {
	t.Parallel()

	resp, ready := dto.ToHealthResponse(map[string]error{"catalog": nil})
	if !ready || resp.Status != dto.HealthReady || resp.Checks["catalog"] != dto.HealthOK {
		t.Errorf("ToHealthResponse(healthy) = %+v, %v", resp, ready)
	}

	resp, ready = dto.ToHealthResponse(map[string]error{
		"catalog":      errors.New("catalog: no landings registered"),
		"smoke-target": nil,
	})
	if ready || resp.Status != dto.HealthNotReady {
		t.Errorf("ToHealthResponse(failing) status = %q, ready = %v", resp.Status, ready)
	}
	if resp.Checks["catalog"] != "catalog: no landings registered" {
		t.Errorf("Checks[catalog] = %q", resp.Checks["catalog"])
	}
	if resp.Checks["smoke-target"] != dto.HealthOK {
		t.Errorf("Checks[smoke-target] = %q, want ok", resp.Checks["smoke-target"])
	}
}
