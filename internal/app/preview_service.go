// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
	"github.com/jsamuelsen11/landing-directory/internal/platform/telemetry"
	"github.com/jsamuelsen11/landing-directory/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/landing-directory/internal/app"

// Compile-time check that PreviewService implements ports.PreviewService.
var _ ports.PreviewService = (*PreviewService)(nil)

// PreviewService implements ports.PreviewService on top of the landing
// catalog. It resolves slugs, awaits loaders, and records structured logs,
// spans, and metrics. It never caches a loaded view.
type PreviewService struct {
	catalog ports.Catalog
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewPreviewService creates a PreviewService. Metrics may be nil when
// telemetry is disabled. A nil logger is replaced with a discard logger.
func NewPreviewService(catalog ports.Catalog, metrics *telemetry.Metrics, logger *slog.Logger) *PreviewService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PreviewService{
		catalog: catalog,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}
}

// Directory returns the public projection of every landing in display order.
func (s *PreviewService) Directory(ctx context.Context) []landing.Summary {
	summaries := s.catalog.Summaries()
	s.logger.DebugContext(ctx, "listing landings", slog.Int("count", len(summaries)))
	return summaries
}

// Slugs returns every valid preview slug in display order.
func (s *PreviewService) Slugs(_ context.Context) []string {
	return s.catalog.ListSlugs()
}

// Describe returns the public projection of a single landing.
func (s *PreviewService) Describe(ctx context.Context, slug string) (landing.Summary, error) {
	d, ok := s.catalog.Lookup(slug)
	if !ok {
		s.logger.DebugContext(ctx, "unknown landing slug",
			slog.String("operation", "Describe"),
			slog.String("slug", slug),
		)
		return landing.Summary{}, &landing.UnknownSlugError{Slug: slug}
	}
	return d.Summary(), nil
}

// Preview resolves slug and awaits its loader exactly once. Unknown slugs
// return *landing.UnknownSlugError without touching any loader.
func (s *PreviewService) Preview(ctx context.Context, slug string) (landing.View, error) {
	ctx, span := s.tracer.Start(ctx, "PreviewService.Preview",
		trace.WithAttributes(telemetry.AttrSlug.String(slug)),
	)
	defer span.End()

	d, ok := s.catalog.Lookup(slug)
	if !ok {
		s.record(ctx, slug, telemetry.ResultNotFound)
		span.SetStatus(codes.Error, "unknown slug")
		s.logger.InfoContext(ctx, "preview requested for unknown slug", slog.String("slug", slug))
		return nil, &landing.UnknownSlugError{Slug: slug}
	}

	start := time.Now()
	view, err := d.Load(ctx)
	if s.metrics != nil {
		s.metrics.LandingLoadDuration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(telemetry.AttrSlug.String(slug)),
		)
	}

	if err == nil && view == nil {
		err = errors.New("loader returned no view")
	}
	if err != nil {
		s.record(ctx, slug, telemetry.ResultError)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "failed to load landing",
			slog.String("operation", "Preview"),
			slog.String("slug", slug),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading landing %q: %w", slug, err)
	}

	s.record(ctx, slug, telemetry.ResultOK)
	s.logger.DebugContext(ctx, "landing loaded",
		slog.String("slug", slug),
		slog.Duration("duration", time.Since(start)),
	)
	return view, nil
}

func (s *PreviewService) record(ctx context.Context, slug, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.LandingPreviewTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrSlug.String(slug),
		telemetry.AttrResult.String(result),
	))
}
