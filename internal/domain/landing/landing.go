// Package landing defines the landing-page descriptor, its public projection,
// and the deferred view contract used by the preview route.
package landing

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/landing-directory/internal/domain"
)

// View is a rendered-on-demand landing page produced by a Loader.
type View interface {
	// Render writes the complete page to w. Implementations must not
	// retain w after returning.
	Render(ctx context.Context, w io.Writer) error
}

// Loader is the deferred factory for a landing page's view. It is invoked
// at most once per navigation and its result is never cached by callers.
type Loader func(ctx context.Context) (View, error)

// slugPattern accepts lowercase kebab-case identifiers usable as a single
// path segment.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Descriptor is the static record describing one landing-page variant.
type Descriptor struct {
	Slug        string
	Title       string
	Description string
	Accent      Accent
	Tags        []string
	Load        Loader
}

// Summary is the public projection of a Descriptor: everything except the
// loader, which is only needed once a visitor navigates to the preview.
type Summary struct {
	Slug        string
	Title       string
	Description string
	Accent      Accent
	Tags        []string
}

// Validate checks the descriptor's fields. Returns a *domain.ValidationError
// (wrapping domain.ErrValidation) with per-field details, or nil.
func (d *Descriptor) Validate() error {
	var verr domain.ValidationError

	switch {
	case d.Slug == "":
		verr.Add("slug", domain.MsgRequired)
	case !slugPattern.MatchString(d.Slug):
		verr.Add("slug", fmt.Sprintf("must be lowercase kebab-case, got %q", d.Slug))
	}
	if strings.TrimSpace(d.Title) == "" {
		verr.Add("title", domain.MsgRequired)
	}
	if !d.Accent.IsValid() {
		verr.Add("accent", fmt.Sprintf("invalid: %q", d.Accent))
	}
	if d.Load == nil {
		verr.Add("load", domain.MsgRequired)
	}

	return verr.OrNil()
}

// Summary returns the public projection of the descriptor. Tags are copied.
func (d *Descriptor) Summary() Summary {
	return Summary{
		Slug:        d.Slug,
		Title:       d.Title,
		Description: d.Description,
		Accent:      d.Accent,
		Tags:        slices.Clone(d.Tags),
	}
}

// Clone returns a copy of the descriptor that shares no mutable state with
// the original.
func (d *Descriptor) Clone() Descriptor {
	c := *d
	c.Tags = slices.Clone(d.Tags)
	return c
}
