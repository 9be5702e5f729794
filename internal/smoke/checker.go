// Package smoke probes a running landing directory over HTTP: the directory,
// every landing preview, an unknown slug, and the JSON API. sitectl runs it
// after a deploy.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/landing-directory/internal/app/fanout"
	"github.com/jsamuelsen11/landing-directory/internal/platform/httpclient"
	"github.com/jsamuelsen11/landing-directory/internal/views"
)

const (
	maxBodyBytes   = 4 << 20
	defaultWorkers = 4
	landingMarker  = "data-landing="
)

// Probe is one expected request/response pair.
type Probe struct {
	Name       string
	Path       string
	WantStatus int

	// WantBody, when set, must appear in the response body.
	WantBody string
	// RejectBody, when set, must not appear in the response body.
	RejectBody string
}

// Result is the outcome of one probe.
type Result struct {
	Probe
	Status   int
	Duration time.Duration
	Err      error
}

// Passed reports whether the probe met its expectations.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report collects every probe result of a run.
type Report struct {
	BaseURL  string
	RunID    string
	Results  []Result
	Duration time.Duration

	// Circuit is the client's circuit breaker verdict after the run; nil
	// while the breaker is closed.
	Circuit error
}

// Failed returns the results that did not pass.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every probe passed.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// Err joins every failed probe into one error, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
	}
	return errors.Join(errs...)
}

// Checker runs the probes through an instrumented client.
type Checker struct {
	client      *httpclient.Client
	slugs       []string
	unknownSlug string
	workers     int
	logger      *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithWorkers bounds how many probes run at once.
func WithWorkers(n int) Option {
	return func(c *Checker) { c.workers = n }
}

// WithLogger sets the checker's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) { c.logger = logger }
}

// New creates a Checker that expects every slug in slugs to preview.
func New(client *httpclient.Client, slugs []string, opts ...Option) *Checker {
	c := &Checker{
		client:      client,
		slugs:       slugs,
		unknownSlug: "smoke-" + uuid.NewString(),
		workers:     defaultWorkers,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Probes returns the probes Run executes, in report order.
func (c *Checker) Probes() []Probe {
	probes := []Probe{{
		Name:       "directory",
		Path:       "/",
		WantStatus: http.StatusOK,
	}}
	for _, slug := range c.slugs {
		probes = append(probes, Probe{
			Name:       "preview " + slug,
			Path:       views.PreviewPath(slug),
			WantStatus: http.StatusOK,
			WantBody:   fmt.Sprintf("%s%q", landingMarker, slug),
		})
	}
	return append(probes,
		Probe{
			Name:       "preview unknown slug",
			Path:       views.PreviewPath(c.unknownSlug),
			WantStatus: http.StatusNotFound,
			RejectBody: landingMarker,
		},
		Probe{
			Name:       "landing api",
			Path:       "/api/v1/landings",
			WantStatus: http.StatusOK,
			WantBody:   `"landings"`,
		},
	)
}

// Run executes every probe concurrently and reports each outcome. Requests
// carry the run ID as their correlation ID.
func (c *Checker) Run(ctx context.Context) Report {
	start := time.Now()
	runID := uuid.NewString()
	ctx = httpclient.WithCorrelationID(ctx, runID)

	probes := c.Probes()
	results := fanout.Run(ctx, c.workers, probes, func(ctx context.Context, p Probe) (Result, error) {
		return c.probe(ctx, p), nil
	})

	report := Report{
		BaseURL: c.client.BaseURL(),
		RunID:   runID,
		Results: make([]Result, len(results)),
	}
	for i, r := range results {
		report.Results[i] = r.Value
		if r.Err != nil {
			report.Results[i] = Result{Probe: probes[i], Err: r.Err}
		}
	}
	report.Duration = time.Since(start)
	report.Circuit = c.client.HealthCheck(ctx)

	c.logger.InfoContext(ctx, "smoke check finished",
		slog.String("base_url", report.BaseURL),
		slog.String("run_id", runID),
		slog.Int("probes", len(report.Results)),
		slog.Int("failed", len(report.Failed())),
		slog.Duration("duration", report.Duration),
		slog.Bool("circuit_closed", report.Circuit == nil),
	)
	return report
}

func (c *Checker) probe(ctx context.Context, p Probe) Result {
	start := time.Now()
	res := Result{Probe: p}

	resp, err := c.client.Get(ctx, p.Path)
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
		res.Status = resp.StatusCode
	}
	if err != nil && resp == nil {
		res.Duration = time.Since(start)
		res.Err = fmt.Errorf("GET %s: %w", p.Path, err)
		return res
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	res.Duration = time.Since(start)
	res.Err = check(p, res.Status, string(body), readErr)

	if res.Err != nil {
		c.logger.WarnContext(ctx, "smoke probe failed",
			slog.String("probe", p.Name),
			slog.String("path", p.Path),
			slog.Int("status", res.Status),
			slog.Any("error", res.Err),
		)
	}
	return res
}

func check(p Probe, status int, body string, readErr error) error {
	if status != p.WantStatus {
		return fmt.Errorf("GET %s: status %d, want %d", p.Path, status, p.WantStatus)
	}
	if readErr != nil {
		return fmt.Errorf("GET %s: reading body: %w", p.Path, readErr)
	}
	if p.WantBody != "" && !strings.Contains(body, p.WantBody) {
		return fmt.Errorf("GET %s: body missing %s", p.Path, p.WantBody)
	}
	if p.RejectBody != "" && strings.Contains(body, p.RejectBody) {
		return fmt.Errorf("GET %s: body unexpectedly contains %s", p.Path, p.RejectBody)
	}
	return nil
}
