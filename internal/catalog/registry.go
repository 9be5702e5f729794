// Package catalog holds the landing-page registry and its resolver.
//
// A Registry is built once and never mutated. Every accessor returns copies,
// so a single instance is shared by concurrent requests without locking.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/landing-directory/internal/domain"
	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
)

// ErrEmpty is reported by HealthCheck when the registry holds no landings.
var ErrEmpty = fmt.Errorf("catalog is empty: %w", domain.ErrUnavailable)

// Registry is an ordered, immutable list of landing descriptors.
type Registry struct {
	entries []landing.Descriptor
}

// New validates the descriptors and returns a registry preserving their order.
// Returns a *domain.ValidationError naming the offending entry when a
// descriptor is invalid or a slug appears more than once.
func New(descriptors ...landing.Descriptor) (*Registry, error) {
	entries := make([]landing.Descriptor, 0, len(descriptors))
	seen := make(map[string]int, len(descriptors))
	var verr domain.ValidationError

	for i := range descriptors {
		d := &descriptors[i]
		prefix := fmt.Sprintf("landings[%d]", i)

		if err := d.Validate(); err != nil {
			var fieldErr *domain.ValidationError
			if !errors.As(err, &fieldErr) {
				return nil, fmt.Errorf("validating %s: %w", prefix, err)
			}
			verr.Merge(prefix, fieldErr)
			continue
		}

		if first, dup := seen[d.Slug]; dup {
			verr.Add(prefix+".slug", fmt.Sprintf("%s, %q already used by landings[%d]",
				domain.MsgDuplicate, d.Slug, first))
			continue
		}
		seen[d.Slug] = i
		entries = append(entries, d.Clone())
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &Registry{entries: entries}, nil
}

// Lookup returns the first descriptor whose slug equals slug exactly.
func (r *Registry) Lookup(slug string) (landing.Descriptor, bool) {
	for i := range r.entries {
		if r.entries[i].Slug == slug {
			return r.entries[i].Clone(), true
		}
	}
	return landing.Descriptor{}, false
}

// Resolve is Lookup returning *landing.UnknownSlugError on a miss.
func (r *Registry) Resolve(slug string) (landing.Descriptor, error) {
	d, ok := r.Lookup(slug)
	if !ok {
		return landing.Descriptor{}, &landing.UnknownSlugError{Slug: slug}
	}
	return d, nil
}

// ListSlugs returns every slug in registry order. The slice is fresh on each
// call.
func (r *Registry) ListSlugs() []string {
	slugs := make([]string, len(r.entries))
	for i := range r.entries {
		slugs[i] = r.entries[i].Slug
	}
	return slugs
}

// Summaries returns the public projection of every descriptor in registry
// order.
func (r *Registry) Summaries() []landing.Summary {
	out := make([]landing.Summary, len(r.entries))
	for i := range r.entries {
		out[i] = r.entries[i].Summary()
	}
	return out
}

// Len returns the number of registered landings.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Name implements ports.HealthChecker.
func (r *Registry) Name() string {
	return "catalog"
}

// HealthCheck implements ports.HealthChecker. The registry is healthy when it
// holds at least one landing.
func (r *Registry) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(r.entries) == 0 {
		return ErrEmpty
	}
	return nil
}
