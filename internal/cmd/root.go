package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for sf
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sf PATTERN PATH",
		Short: "Simple file search",
		Long: `sf walks the directory tree below PATH and prints every entry whose
name contains PATTERN.

Matching is case-insensitive for ASCII letters unless --case-sensitive is
given. Hidden entries are skipped unless --hidden is given, and the contents
of hidden directories are skipped with them unless --no-prune-hidden is given.

Configuration is loaded from config.yaml in the sf config directory
($SF_HOME, or the user config directory) if present.
CLI flags override configuration file settings.

Examples:
  # Every entry containing "report" below the working directory
  sf report .

  # Only Rust and Go files, excluding names containing "test" or "old"
  sf main ~/src -f -e rs,go -E test -E old

  # Count the matches and show how long the search took
  sf error /var/log -c -s

  # A pattern that names a subcommand goes after "--"
  sf -- log /var`,
		Args:    cobra.ExactArgs(2),
		Version: Version,
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addSearchFlags(cmd)
	cmd.PersistentFlags().String("config", "", "Path to config file (default: <config dir>/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(NewLogCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}
