// Command sitectl lists, exports, and smoke-checks the landing directory.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/landing-directory/internal/platform/config"
	"github.com/jsamuelsen11/landing-directory/internal/platform/logging"
)

const defaultProfile = "local"

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
	noColor   bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sitectl",
		Short: "Operate the landing directory",
		Long: `sitectl works with the landing directory outside the server:

  list    show the registered landing pages
  export  pre-render the site into a static directory
  smoke   probe a running deployment`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", config.Profile(defaultProfile),
		"Config profile (defaults to $APP_PROFILE, then local)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "Directory holding base.yaml and profile files")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newSmokeCommand(opts))

	return cmd
}

// loadConfig loads the selected profile. flagKeys maps the command's flag
// names to config keys; every flag the user set overrides its key.
func (o *rootOptions) loadConfig(cmd *cobra.Command, flagKeys map[string]string) (*config.Config, error) {
	overrides := make(map[string]any, len(flagKeys))
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir), config.WithOverrides(overrides))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger writes structured logs to the command's stderr, tagged with the
// subcommand that produced them.
func (o *rootOptions) newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr(),
		slog.String("command", cmd.Name()),
		slog.String("profile", o.profile),
	)
}
