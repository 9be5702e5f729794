// Package export pre-renders the landing directory into a static site: the
// directory page, one page per landing slug, the not-found page, and the
// embedded assets. The layout mirrors the server's routes so any static host
// can serve the result.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jsamuelsen11/landing-directory/internal/app/fanout"
	"github.com/jsamuelsen11/landing-directory/internal/ports"
	"github.com/jsamuelsen11/landing-directory/internal/views"
)

const (
	indexFile    = "index.html"
	notFoundFile = "404.html"
	previewDir   = "preview"
	assetsDir    = "assets"

	dirPerm  = 0o755
	filePerm = 0o644

	defaultWorkers = 4
)

// ErrUnsafeOutDir is returned when Clean is requested for a directory that
// must never be removed.
var ErrUnsafeOutDir = errors.New("refusing to clean output directory")

// Report describes a finished export.
type Report struct {
	OutDir   string
	Pages    []string
	Assets   int
	Duration time.Duration
}

// Exporter writes the static site.
type Exporter struct {
	svc     ports.PreviewService
	pages   ports.PageRenderer
	assets  fs.FS
	workers int
	clean   bool
	logger  *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithWorkers bounds how many preview pages render at once.
func WithWorkers(n int) Option {
	return func(e *Exporter) { e.workers = n }
}

// WithClean removes the output directory before writing.
func WithClean(clean bool) Option {
	return func(e *Exporter) { e.clean = clean }
}

// WithLogger sets the exporter's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) { e.logger = logger }
}

// New creates an Exporter. assets is copied verbatim under assets/.
func New(svc ports.PreviewService, pages ports.PageRenderer, assets fs.FS, opts ...Option) *Exporter {
	e := &Exporter{
		svc:     svc,
		pages:   pages,
		assets:  assets,
		workers: defaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the site into outDir and returns what was written. Preview
// pages render concurrently; a failing page does not stop the others, and
// every failure is joined into the returned error. The report is non-nil
// whenever outDir could be prepared.
func (e *Exporter) Export(ctx context.Context, outDir string) (*Report, error) {
	start := time.Now()

	if err := e.prepare(outDir); err != nil {
		return nil, err
	}

	report := &Report{OutDir: outDir}
	var errs []error

	if err := e.writeDirectory(ctx, outDir); err != nil {
		errs = append(errs, err)
	} else {
		report.Pages = append(report.Pages, indexFile)
	}

	if err := e.writeNotFound(ctx, outDir); err != nil {
		errs = append(errs, err)
	} else {
		report.Pages = append(report.Pages, notFoundFile)
	}

	results := fanout.Run(ctx, e.workers, e.svc.Slugs(ctx), func(ctx context.Context, slug string) (string, error) {
		return e.writePreview(ctx, outDir, slug)
	})
	for _, r := range results {
		if r.Err == nil {
			report.Pages = append(report.Pages, r.Value)
		}
	}
	errs = append(errs, fanout.Join(results))

	n, err := e.copyAssets(ctx, outDir)
	report.Assets = n
	errs = append(errs, err)

	report.Duration = time.Since(start)

	if err := errors.Join(errs...); err != nil {
		e.logger.ErrorContext(ctx, "static export failed",
			slog.String("operation", "Exporter.Export"),
			slog.String("out_dir", outDir),
			slog.Int("pages", len(report.Pages)),
			slog.Any("error", err),
		)
		return report, err
	}

	e.logger.InfoContext(ctx, "static export complete",
		slog.String("out_dir", outDir),
		slog.Int("pages", len(report.Pages)),
		slog.Int("assets", report.Assets),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}

func (e *Exporter) prepare(outDir string) error {
	if outDir == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafeOutDir)
	}
	if e.clean {
		if err := checkCleanable(outDir); err != nil {
			return err
		}
		if err := os.RemoveAll(outDir); err != nil {
			return fmt.Errorf("cleaning %s: %w", outDir, err)
		}
	}
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	return nil
}

func (e *Exporter) writeDirectory(ctx context.Context, outDir string) error {
	var buf bytes.Buffer
	if err := e.pages.RenderDirectory(ctx, &buf, e.svc.Directory(ctx)); err != nil {
		return fmt.Errorf("exporting %s: %w", indexFile, err)
	}
	return writeFile(filepath.Join(outDir, indexFile), buf.Bytes())
}

func (e *Exporter) writeNotFound(ctx context.Context, outDir string) error {
	var buf bytes.Buffer
	if err := e.pages.RenderStatus(ctx, &buf, views.NotFoundPage()); err != nil {
		return fmt.Errorf("exporting %s: %w", notFoundFile, err)
	}
	return writeFile(filepath.Join(outDir, notFoundFile), buf.Bytes())
}

// writePreview renders one landing and returns its path relative to outDir.
func (e *Exporter) writePreview(ctx context.Context, outDir, slug string) (string, error) {
	view, err := e.svc.Preview(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("exporting preview %q: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := view.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("exporting preview %q: %w", slug, err)
	}

	rel := filepath.Join(previewDir, slug, indexFile)
	if err := writeFile(filepath.Join(outDir, rel), buf.Bytes()); err != nil {
		return "", err
	}
	return rel, nil
}

func (e *Exporter) copyAssets(ctx context.Context, outDir string) (int, error) {
	if e.assets == nil {
		return 0, nil
	}

	n := 0
	err := fs.WalkDir(e.assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(e.assets, path)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(outDir, assetsDir, filepath.FromSlash(path)), data); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("exporting assets: %w", err)
	}
	return n, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// checkCleanable refuses the filesystem root, the home directory, and the
// working directory or any of its ancestors.
func checkCleanable(outDir string) error {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", outDir, err)
	}
	abs = filepath.Clean(abs)

	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("%w: %s is the filesystem root", ErrUnsafeOutDir, abs)
	}
	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return fmt.Errorf("%w: %s is the home directory", ErrUnsafeOutDir, abs)
	}
	if wd, err := os.Getwd(); err == nil {
		rel, err := filepath.Rel(abs, wd)
		outside := rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
		if err == nil && !outside {
			return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeOutDir, abs)
		}
	}
	return nil
}
