package catalog_test

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/jsamuelsen11/landing-directory/internal/catalog"
	"github.com/jsamuelsen11/landing-directory/internal/domain"
	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
)

type stubView struct{}

func (stubView) Render(context.Context, io.Writer) error { return nil }

func stubLoader(context.Context) (landing.View, error) { return stubView{}, nil }

func descriptor(slug string) landing.Descriptor {
	return landing.Descriptor{
		Slug:   slug,
		Title:  slug,
		Accent: landing.AccentTeal,
		Tags:   []string{"a", "b"},
		Load:   stubLoader,
	}
}

func TestDefault_ListSlugs(t *testing.T) {
	t.Parallel()

	want := []string{"neural-pulse", "gradient-horizon", "minimal-terminal"}
	got := catalog.Default().ListSlugs()

	if !slices.Equal(got, want) {
		t.Errorf("ListSlugs() = %v, want %v", got, want)
	}
}

func TestDefault_LookupEverySlug(t *testing.T) {
	t.Parallel()

	r := catalog.Default()
	for _, slug := range r.ListSlugs() {
		d, ok := r.Lookup(slug)
		if !ok {
			t.Errorf("Lookup(%q) ok = false, want true", slug)
			continue
		}
		if d.Slug != slug {
			t.Errorf("Lookup(%q).Slug = %q", slug, d.Slug)
		}
		if d.Load == nil {
			t.Errorf("Lookup(%q).Load = nil", slug)
		}
	}
}

func TestDefault_NeuralPulse(t *testing.T) {
	t.Parallel()

	d, ok := catalog.Default().Lookup("neural-pulse")
	if !ok {
		t.Fatal("Lookup(neural-pulse) ok = false, want true")
	}
	if d.Title != "Neural Pulse" {
		t.Errorf("Title = %q, want %q", d.Title, "Neural Pulse")
	}
	if d.Accent != landing.AccentTeal {
		t.Errorf("Accent = %q, want %q", d.Accent, landing.AccentTeal)
	}
	if !slices.Equal(d.Tags, []string{"futuristic", "scientific", "teal"}) {
		t.Errorf("Tags = %v", d.Tags)
	}
}

func TestDefault_LookupUnknown(t *testing.T) {
	t.Parallel()

	r := catalog.Default()
	tests := []string{"does-not-exist", "", "Neural-Pulse", "neural-pulse/", " neural-pulse"}

	for _, slug := range tests {
		if _, ok := r.Lookup(slug); ok {
			t.Errorf("Lookup(%q) ok = true, want false", slug)
		}

		_, err := r.Resolve(slug)
		if !errors.Is(err, landing.ErrUnknownSlug) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnknownSlug", slug, err)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrNotFound", slug, err)
		}

		var unknown *landing.UnknownSlugError
		if !errors.As(err, &unknown) || unknown.Slug != slug {
			t.Errorf("Resolve(%q) error = %#v, want *UnknownSlugError carrying slug", slug, err)
		}
	}
}

func TestRegistry_Idempotent(t *testing.T) {
	t.Parallel()

	r := catalog.Default()

	first := r.ListSlugs()
	for range 5 {
		if got := r.ListSlugs(); !slices.Equal(got, first) {
			t.Fatalf("ListSlugs() = %v, want %v", got, first)
		}
	}

	a, _ := r.Lookup("gradient-horizon")
	b, _ := r.Lookup("gradient-horizon")
	if a.Slug != b.Slug || a.Title != b.Title || a.Accent != b.Accent || !slices.Equal(a.Tags, b.Tags) {
		t.Errorf("Lookup() not idempotent: %+v vs %+v", a, b)
	}
}

func TestRegistry_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	r, err := catalog.New(descriptor("alpha"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	slugs := r.ListSlugs()
	slugs[0] = "mutated"

	d, _ := r.Lookup("alpha")
	d.Tags[0] = "mutated"

	s := r.Summaries()
	s[0].Tags[1] = "mutated"

	again, ok := r.Lookup("alpha")
	if !ok {
		t.Fatal("Lookup(alpha) ok = false after mutating returned values")
	}
	if !slices.Equal(again.Tags, []string{"a", "b"}) {
		t.Errorf("Tags = %v, want [a b]", again.Tags)
	}
	if got := r.ListSlugs(); got[0] != "alpha" {
		t.Errorf("ListSlugs()[0] = %q, want alpha", got[0])
	}
}

func TestRegistry_CallerSliceMutationAfterNew(t *testing.T) {
	t.Parallel()

	in := []landing.Descriptor{descriptor("alpha")}
	r, err := catalog.New(in...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	in[0].Slug = "beta"
	in[0].Tags[0] = "mutated"

	d, ok := r.Lookup("alpha")
	if !ok {
		t.Fatal("Lookup(alpha) ok = false after caller mutated input")
	}
	if d.Tags[0] != "a" {
		t.Errorf("Tags[0] = %q, want a", d.Tags[0])
	}
}

func TestRegistry_Summaries(t *testing.T) {
	t.Parallel()

	r := catalog.Default()
	summaries := r.Summaries()
	slugs := r.ListSlugs()

	if len(summaries) != len(slugs) {
		t.Fatalf("len(Summaries()) = %d, want %d", len(summaries), len(slugs))
	}
	for i, s := range summaries {
		if s.Slug != slugs[i] {
			t.Errorf("Summaries()[%d].Slug = %q, want %q", i, s.Slug, slugs[i])
		}
		if s.Description == "" {
			t.Errorf("Summaries()[%d].Description is empty", i)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    []landing.Descriptor
		field string
	}{
		{
			name:  "duplicate slug",
			in:    []landing.Descriptor{descriptor("alpha"), descriptor("beta"), descriptor("alpha")},
			field: "landings[2].slug",
		},
		{
			name: "missing loader",
			in: []landing.Descriptor{descriptor("alpha"), func() landing.Descriptor {
				d := descriptor("beta")
				d.Load = nil
				return d
			}()},
			field: "landings[1].load",
		},
		{
			name: "invalid accent",
			in: []landing.Descriptor{func() landing.Descriptor {
				d := descriptor("alpha")
				d.Accent = "crimson"
				return d
			}()},
			field: "landings[0].accent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := catalog.New(tt.in...)
			if r != nil {
				t.Errorf("New() registry = %v, want nil", r)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("New() error = %v, want ErrValidation", err)
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.field, verr.Fields)
			}
		})
	}
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	r, err := catalog.New()
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if got := r.ListSlugs(); len(got) != 0 {
		t.Errorf("ListSlugs() = %v, want empty", got)
	}
}

func TestRegistry_HealthCheck(t *testing.T) {
	t.Parallel()

	if name := catalog.Default().Name(); name != "catalog" {
		t.Errorf("Name() = %q, want catalog", name)
	}
	if err := catalog.Default().HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}

	empty, _ := catalog.New()
	err := empty.HealthCheck(context.Background())
	if !errors.Is(err, catalog.ErrEmpty) || !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("HealthCheck() on empty = %v, want ErrEmpty", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := catalog.Default().HealthCheck(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("HealthCheck(canceled) = %v, want context.Canceled", err)
	}
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	t.Parallel()

	r := catalog.Default()
	var wg sync.WaitGroup

	for range 32 {
		wg.Go(func() {
			for _, slug := range r.ListSlugs() {
				if d, ok := r.Lookup(slug); !ok || d.Slug != slug {
					t.Errorf("Lookup(%q) = %+v, %v", slug, d, ok)
				}
			}
			_ = r.Summaries()
		})
	}
	wg.Wait()
}
