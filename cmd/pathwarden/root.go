package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"warden-hq/pathwarden/pkg/cli"
	"warden-hq/pathwarden/pkg/telemetry/logging"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pathwarden",
	Short: "Pathwarden - path schema validation for coordination namespaces",
	Long: `Pathwarden validates coordination-namespace operations against declarative
path schemas.

Schema-set documents bind path selectors (exact paths or full-match regular
expressions) to policies:
  - Tri-state allowances for ephemeral, sequential, and watched nodes
  - Data payload validators (JSON, UTF-8, regex)
  - Deletion protection

For more information, visit: https://github.com/warden-hq/pathwarden`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(cli.ExitUsage)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// cliLogger returns a stderr logger that stays quiet unless --verbose is set.
func cliLogger() *slog.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Config{Level: level})
	if err != nil {
		return slog.Default()
	}
	return logger
}
