package ports

import "github.com/jsamuelsen11/landing-directory/internal/domain/landing"

// Catalog is the read-only landing registry consumed by the application
// layer. Implemented by catalog.Registry.
type Catalog interface {
	// Lookup returns the first descriptor whose slug matches exactly.
	Lookup(slug string) (landing.Descriptor, bool)

	// ListSlugs returns every slug in registry order.
	ListSlugs() []string

	// Summaries returns the public projection of every descriptor.
	Summaries() []landing.Summary
}
