package views

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
)

type theme struct {
	template string
	content  string
	accent   landing.Accent
}

var (
	neuralPulse     = theme{template: "neural-pulse.gohtml", content: "neural-pulse.yaml", accent: landing.AccentTeal}
	gradientHorizon = theme{template: "gradient-horizon.gohtml", content: "gradient-horizon.yaml", accent: landing.AccentVioletRose}
	minimalTerminal = theme{template: "minimal-terminal.gohtml", content: "minimal-terminal.yaml", accent: landing.AccentEmerald}
)

// NeuralPulse loads the futuristic teal landing page.
func NeuralPulse(ctx context.Context) (landing.View, error) {
	return load(ctx, neuralPulse)
}

// GradientHorizon loads the violet-to-rose landing page.
func GradientHorizon(ctx context.Context) (landing.View, error) {
	return load(ctx, gradientHorizon)
}

// MinimalTerminal loads the emerald terminal-style landing page.
func MinimalTerminal(ctx context.Context) (landing.View, error) {
	return load(ctx, minimalTerminal)
}

// load parses the theme's templates and content. Nothing is cached; every
// call does the full work.
func load(ctx context.Context, th theme) (landing.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, err := parsePage(th.template)
	if err != nil {
		return nil, err
	}
	content, err := loadContent(th.content)
	if err != nil {
		return nil, err
	}

	return &Page{
		tmpl: tmpl,
		data: pageData{
			Title:   content.Title,
			Accent:  th.accent.String(),
			Back:    true,
			Content: content,
		},
	}, nil
}

// Page is a loaded landing page ready to render.
type Page struct {
	tmpl *template.Template
	data pageData
}

// Title returns the page's document title.
func (p *Page) Title() string {
	return p.data.Title
}

// Render implements landing.View.
func (p *Page) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.tmpl.ExecuteTemplate(w, baseName, p.data); err != nil {
		return fmt.Errorf("rendering %s: %w", p.tmpl.Name(), err)
	}
	return nil
}
