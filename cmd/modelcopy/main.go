// Package main is the entry point for the modelcopy CLI.
//
// The CLI drives model copy operations between two service resources from a
// YAML configuration file describing the source and target.
//
// Usage:
//
//	modelcopy authorize -c config.yaml                 # mint a copy authorization
//	modelcopy copy -c config.yaml --model <id>         # copy and wait
//	modelcopy status -c config.yaml --token-file t.json # one poll step from a saved token
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "modelcopy",
	Short: "Copy models between service resources",
	Long: `modelcopy drives long-running model copy operations to completion.

A copy moves a trained model from a source resource into a target resource.
The target first issues a copy authorization; the source then executes the
copy while this tool polls until it finishes. Interrupted copies can be
resumed from a saved token file.

Example config:
  source:
    endpoint: https://westus2.api.cognitive.example.com
    api_key: <source key>
  target:
    endpoint: https://eastus.api.cognitive.example.com
    api_key: <target key>
    resource_id: /subscriptions/.../accounts/target
    resource_region: eastus
  poll_interval: 5s`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("modelcopy %s (%s)\n", version, commit)
	},
}

// newLogger creates a text logger for CLI use.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
