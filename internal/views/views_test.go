package views_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
	"github.com/jsamuelsen11/landing-directory/internal/ports"
	"github.com/jsamuelsen11/landing-directory/internal/views"
)

var _ ports.PageRenderer = (*views.Renderer)(nil)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func testSite() views.Site {
	return views.Site{
		Name:    "Inner North Labs",
		Tagline: "Landing Page Options",
		Intro:   "Browse and preview different landing page designs. Click any card to see the full page.",
	}
}

func newRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	r, err := views.NewRenderer(testSite())
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

func matchSnapshot(t *testing.T, html string) {
	t.Helper()
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, html)
}

func render(t *testing.T, load landing.Loader) string {
	t.Helper()

	view, err := load(context.Background())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	var buf bytes.Buffer
	if err := view.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestLoaders_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		load   landing.Loader
		accent string
		want   []string
	}{
		{
			name:   "neural pulse",
			load:   views.NeuralPulse,
			accent: "accent-teal",
			want:   []string{`data-landing="neural-pulse"`, "Health Intelligence", "Where AI Meets Human Health", "Your Privacy Matters"},
		},
		{
			name:   "gradient horizon",
			load:   views.GradientHorizon,
			accent: "accent-violet-rose",
			want:   []string{`data-landing="gradient-horizon"`, "With Intelligence", "Email Support", "Typical response time: within 24 hours"},
		},
		{
			name:   "minimal terminal",
			load:   views.MinimalTerminal,
			accent: "accent-emerald",
			want:   []string{`data-landing="minimal-terminal"`, "Building the future", "// the_stack", "Built in Melbourne", "subject=Support%20Request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := render(t, tt.load)

			if !strings.HasPrefix(html, "<!DOCTYPE html>") {
				t.Errorf("output does not start with doctype: %.40q", html)
			}
			if !strings.Contains(html, `class="`+tt.accent+`"`) {
				t.Errorf("output missing body class %q", tt.accent)
			}
			if !strings.Contains(html, `<a class="back" href="/">`) {
				t.Error("output missing back link to directory")
			}
			for _, w := range tt.want {
				if !strings.Contains(html, w) {
					t.Errorf("output missing %q", w)
				}
			}
			for _, section := range []string{`id="about"`, `id="products"`, `id="contact"`, `id="privacy"`, `id="support"`} {
				if !strings.Contains(html, section) {
					t.Errorf("output missing section %s", section)
				}
			}
		})
	}
}

func TestLoaders_FreshViewPerCall(t *testing.T) {
	t.Parallel()

	a, err := views.MinimalTerminal(context.Background())
	if err != nil {
		t.Fatalf("MinimalTerminal() error = %v", err)
	}
	b, err := views.MinimalTerminal(context.Background())
	if err != nil {
		t.Fatalf("MinimalTerminal() error = %v", err)
	}
	if a == b {
		t.Error("MinimalTerminal() returned the same view twice, want a fresh view per call")
	}
}

func TestLoaders_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, load := range map[string]landing.Loader{
		"neural-pulse":     views.NeuralPulse,
		"gradient-horizon": views.GradientHorizon,
		"minimal-terminal": views.MinimalTerminal,
	} {
		view, err := load(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", name, err)
		}
		if view != nil {
			t.Errorf("%s: view = %v, want nil", name, view)
		}
	}
}

func TestPage_RenderCanceled(t *testing.T) {
	t.Parallel()

	view, err := views.NeuralPulse(context.Background())
	if err != nil {
		t.Fatalf("NeuralPulse() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := view.Render(ctx, &buf); !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render() wrote %d bytes on canceled context", buf.Len())
	}
}

func TestRenderer_RenderDirectory(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	summaries := []landing.Summary{
		{Slug: "neural-pulse", Title: "Neural Pulse", Description: "Futuristic biotech aesthetic", Accent: landing.AccentTeal, Tags: []string{"futuristic", "scientific"}},
		{Slug: "minimal-terminal", Title: "Minimal Terminal", Description: "Developer-credible precision", Accent: landing.AccentEmerald, Tags: []string{"minimal"}},
	}

	var buf bytes.Buffer
	if err := r.RenderDirectory(context.Background(), &buf, summaries); err != nil {
		t.Fatalf("RenderDirectory() error = %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`href="/preview/neural-pulse"`,
		`href="/preview/minimal-terminal"`,
		`class="card card--teal"`,
		`class="card card--emerald"`,
		"Landing Page Options",
		`<li class="badge">scientific</li>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("directory missing %q", want)
		}
	}
	if strings.Contains(html, `class="back"`) {
		t.Error("directory should not render a back link")
	}

	matchSnapshot(t, html)
}

func TestRenderer_RenderDirectoryEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := newRenderer(t).RenderDirectory(context.Background(), &buf, nil); err != nil {
		t.Fatalf("RenderDirectory() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No landing pages are available.") {
		t.Error("empty directory missing placeholder text")
	}
}

func TestRenderer_RenderStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := newRenderer(t).RenderStatus(context.Background(), &buf, views.NotFoundPage()); err != nil {
		t.Fatalf("RenderStatus() error = %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, `<p class="status-code">404</p>`) {
		t.Error("status page missing code")
	}
	if !strings.Contains(html, "<title>Page not found | Inner North Labs</title>") {
		t.Error("status page missing title")
	}
	if strings.Contains(html, "data-landing=") {
		t.Error("status page must not contain landing content")
	}

	matchSnapshot(t, html)
}

func TestAssets(t *testing.T) {
	t.Parallel()

	css, err := fs.ReadFile(views.Assets(), "site.css")
	if err != nil {
		t.Fatalf("ReadFile(site.css) error = %v", err)
	}
	if !bytes.Contains(css, []byte(".card--violet-rose")) {
		t.Error("site.css missing accent styles")
	}
}

func TestPreviewPath(t *testing.T) {
	t.Parallel()

	if got := views.PreviewPath("gradient-horizon"); got != "/preview/gradient-horizon" {
		t.Errorf("PreviewPath() = %q", got)
	}
}
