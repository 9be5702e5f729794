// Package main is the entry point for the landing directory server. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/landing-directory/internal/adapters/http"
	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/landing-directory/internal/app"
	"github.com/jsamuelsen11/landing-directory/internal/catalog"
	"github.com/jsamuelsen11/landing-directory/internal/platform/config"
	"github.com/jsamuelsen11/landing-directory/internal/platform/health"
	"github.com/jsamuelsen11/landing-directory/internal/platform/logging"
	"github.com/jsamuelsen11/landing-directory/internal/platform/telemetry"
	"github.com/jsamuelsen11/landing-directory/internal/ports"
	"github.com/jsamuelsen11/landing-directory/internal/views"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*catalog.Registry](injector))

	logger.Info("landing catalog loaded",
		slog.String("profile", profile),
		slog.Any("slugs", do.MustInvoke[ports.Catalog](injector).ListSlugs()),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := providers.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*catalog.Registry, error) {
		return catalog.Default(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Catalog, error) {
		return do.MustInvoke[*catalog.Registry](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PreviewService, error) {
		cat := do.MustInvoke[ports.Catalog](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewPreviewService(cat, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.PageRenderer, error) {
		renderer, err := views.NewRenderer(views.Site{
			Name:    cfg.Site.Name,
			Tagline: cfg.Site.Tagline,
			Intro:   cfg.Site.Intro,
		})
		if err != nil {
			return nil, fmt.Errorf("loading templates: %w", err)
		}
		return renderer, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SiteHandler, error) {
		svc := do.MustInvoke[ports.PreviewService](i)
		pages := do.MustInvoke[ports.PageRenderer](i)
		return handlers.NewSiteHandler(svc, pages), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.LandingHandler, error) {
		svc := do.MustInvoke[ports.PreviewService](i)
		return handlers.NewLandingHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		siteH := do.MustInvoke[*handlers.SiteHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		assets := middleware.CacheControl(cfg.Server.AssetMaxAge)(nethttp.FileServerFS(views.Assets()))

		return adapthttp.NewRouter(adapthttp.Routes{
			Site:     siteH,
			Landings: do.MustInvoke[*handlers.LandingHandler](i),
			Health:   do.MustInvoke[*handlers.HealthHandler](i),
			Assets:   assets,
		}, middleware.Pipeline{
			Logger:         logger,
			Metrics:        metrics,
			OnError:        adapthttp.NewErrorWriter(siteH),
			RequestTimeout: cfg.Server.RequestTimeout,
			QuietPaths:     []string{"/health/", "/assets/"},
		}.Middleware()...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
