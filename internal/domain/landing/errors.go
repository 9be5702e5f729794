package landing

import (
	"fmt"

	"github.com/jsamuelsen11/landing-directory/internal/domain"
)

// ErrUnknownSlug is returned when no descriptor matches a requested slug.
// It wraps domain.ErrNotFound so boundary code can map it generically.
var ErrUnknownSlug = fmt.Errorf("unknown landing slug: %w", domain.ErrNotFound)

// UnknownSlugError carries the slug that failed to resolve.
// errors.Is(err, ErrUnknownSlug) and errors.Is(err, domain.ErrNotFound) both
// hold for it.
type UnknownSlugError struct {
	Slug string
}

func (e *UnknownSlugError) Error() string {
	return fmt.Sprintf("landing %q: %s", e.Slug, ErrUnknownSlug.Error())
}

func (e *UnknownSlugError) Unwrap() error {
	return ErrUnknownSlug
}
