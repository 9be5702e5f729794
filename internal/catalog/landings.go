package catalog

import (
	"sync"

	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
	"github.com/jsamuelsen11/landing-directory/internal/views"
)

// Landings returns the descriptors of the built-in landing pages in display
// order.
func Landings() []landing.Descriptor {
	return []landing.Descriptor{
		{
			Slug:        "neural-pulse",
			Title:       "Neural Pulse",
			Description: "Futuristic biotech aesthetic with teal accents and spotlight effects",
			Accent:      landing.AccentTeal,
			Tags:        []string{"futuristic", "scientific", "teal"},
			Load:        views.NeuralPulse,
		},
		{
			Slug:        "gradient-horizon",
			Title:       "Gradient Horizon",
			Description: "Premium warmth with violet-to-rose gradients and bold typography",
			Accent:      landing.AccentVioletRose,
			Tags:        []string{"premium", "gradient", "warm"},
			Load:        views.GradientHorizon,
		},
		{
			Slug:        "minimal-terminal",
			Title:       "Minimal Terminal",
			Description: "Developer-credible precision with emerald accents and data-driven feel",
			Accent:      landing.AccentEmerald,
			Tags:        []string{"minimal", "terminal", "data"},
			Load:        views.MinimalTerminal,
		},
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := New(Landings()...)
	if err != nil {
		panic("catalog: built-in landings are invalid: " + err.Error())
	}
	return r
})

// Default returns the registry of built-in landing pages.
func Default() *Registry {
	return defaultRegistry()
}
