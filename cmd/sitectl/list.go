package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/landing-directory/internal/adapters/http/dto"
	"github.com/jsamuelsen11/landing-directory/internal/catalog"
	"github.com/jsamuelsen11/landing-directory/internal/domain/landing"
)

func newListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered landing pages",
		Example: `  sitectl list
  sitectl list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries := catalog.Default().Summaries()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dto.ToLandingListResponse(summaries))
			}
			return writeTable(cmd, summaries)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the landings as JSON")

	return cmd
}

func writeTable(cmd *cobra.Command, summaries []landing.Summary) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	header := color.New(color.Bold)

	header.Fprintln(tw, "SLUG\tTITLE\tACCENT\tTAGS")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			accentColor(s.Accent).Sprint(s.Slug),
			s.Title,
			s.Accent,
			strings.Join(s.Tags, ", "),
		)
	}
	return tw.Flush()
}

func accentColor(a landing.Accent) *color.Color {
	switch a {
	case landing.AccentTeal:
		return color.New(color.FgCyan)
	case landing.AccentVioletRose:
		return color.New(color.FgMagenta)
	case landing.AccentEmerald:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Reset)
	}
}
