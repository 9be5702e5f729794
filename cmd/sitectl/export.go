package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/landing-directory/internal/app"
	"github.com/jsamuelsen11/landing-directory/internal/catalog"
	"github.com/jsamuelsen11/landing-directory/internal/export"
	"github.com/jsamuelsen11/landing-directory/internal/views"
)

func newExportCommand(root *rootOptions) *cobra.Command {
	var clean bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Pre-render the site into a static directory",
		Long: `Export writes index.html, 404.html, preview/{slug}/index.html for every
landing, and the static assets. The output can be served by any static host.`,
		Example: `  sitectl export
  sitectl export --out public --clean`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig(cmd, map[string]string{
				"out":     "export.out_dir",
				"workers": "export.workers",
			})
			if err != nil {
				return err
			}
			outDir := cfg.Export.OutDir

			logger := root.newLogger(cmd, cfg)
			renderer, err := views.NewRenderer(views.Site{
				Name:    cfg.Site.Name,
				Tagline: cfg.Site.Tagline,
				Intro:   cfg.Site.Intro,
			})
			if err != nil {
				return fmt.Errorf("loading templates: %w", err)
			}

			exporter := export.New(
				app.NewPreviewService(catalog.Default(), nil, logger),
				renderer,
				views.Assets(),
				export.WithWorkers(cfg.Export.Workers),
				export.WithClean(clean),
				export.WithLogger(logger),
			)

			report, err := exporter.Export(cmd.Context(), outDir)
			if err != nil {
				return fmt.Errorf("export to %s: %w", outDir, err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Exported %d pages and %d assets to %s in %s\n",
				len(report.Pages), report.Assets, report.OutDir, report.Duration.Round(msRound))
			for _, p := range report.Pages {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().String("out", "", "Output directory (defaults to export.out_dir)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the output directory before writing")
	cmd.Flags().Int("workers", 0, "Concurrent page renders (defaults to export.workers)")

	return cmd
}
