package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/landing-directory/internal/catalog"
	"github.com/jsamuelsen11/landing-directory/internal/platform/httpclient"
	"github.com/jsamuelsen11/landing-directory/internal/platform/telemetry"
	"github.com/jsamuelsen11/landing-directory/internal/smoke"
)

const (
	peerService  = "landing-directory"
	msRound      = time.Millisecond
	flushTimeout = 5 * time.Second
)

var errSmokeFailed = errors.New("smoke check failed")

func newSmokeCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Probe a running deployment",
		Long: `Smoke requests the directory, every landing preview, an unknown slug, and
the landing API, and checks each status code and page marker. It exits
non-zero when any probe fails.`,
		Example: `  sitectl smoke
  sitectl smoke --base-url https://landing-directory.example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig(cmd, map[string]string{"base-url": "client.base_url"})
			if err != nil {
				return err
			}

			logger := root.newLogger(cmd, cfg)

			providers, err := telemetry.Setup(cmd.Context(), cfg.Telemetry)
			if err != nil {
				return fmt.Errorf("initializing telemetry: %w", err)
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), flushTimeout)
				defer cancel()
				if err := providers.Shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown error", slog.Any("error", err))
				}
			}()

			client := httpclient.New(&cfg.Client, peerService, providers.Metrics, logger)
			checker := smoke.New(client, catalog.Default().ListSlugs(),
				smoke.WithWorkers(cfg.Smoke.Workers),
				smoke.WithLogger(logger),
			)

			report := checker.Run(cmd.Context())
			if err := writeReport(cmd, report); err != nil {
				return err
			}

			if !report.OK() {
				return fmt.Errorf("%w: %d of %d probes against %s: %w", errSmokeFailed,
					len(report.Failed()), len(report.Results), report.BaseURL, report.Err())
			}
			return nil
		},
	}

	cmd.Flags().String("base-url", "", "Deployment to probe (defaults to client.base_url)")

	return cmd
}

func writeReport(cmd *cobra.Command, report smoke.Report) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Smoke check %s (run %s)\n", report.BaseURL, report.RunID)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range report.Results {
		verdict := color.GreenString("PASS")
		if !r.Passed() {
			verdict = color.RedString("FAIL")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", verdict, statusLabel(r.Status), r.Path, r.Duration.Round(msRound))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if report.Circuit != nil {
		color.New(color.FgYellow).Fprintf(out, "circuit: %v\n", report.Circuit)
	}

	summary := color.New(color.FgGreen, color.Bold)
	if !report.OK() {
		summary = color.New(color.FgRed, color.Bold)
	}
	summary.Fprintf(out, "%d/%d probes passed in %s\n",
		len(report.Results)-len(report.Failed()), len(report.Results), report.Duration.Round(msRound))
	return nil
}

// statusLabel colors an HTTP status code by class.
func statusLabel(code int) string {
	switch {
	case code == 0:
		return color.RedString("---")
	case code >= http.StatusInternalServerError:
		return color.RedString("%d", code)
	case code >= http.StatusBadRequest:
		return color.YellowString("%d", code)
	default:
		return color.GreenString("%d", code)
	}
}
