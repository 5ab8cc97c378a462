// Package cli provides the Cobra command structure for the inkmark
// syntax-tree debugging tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkmark/internal/config"
	"github.com/yaklabco/inkmark/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root inkmark command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string
	var configPath string
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "inkmark",
		Short: "Inspect Inkmark syntax trees",
		Long: `inkmark is a debugging tool for the Inkmark syntax-tree core.

It loads green trees from treefiles (the YAML interchange format emitted
by the Inkmark parser and by parser test harnesses), renders them as red
trees with absolute spans, and casts them to the typed markup AST the
evaluator consumes.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.LoadForDir(configPath, "")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			*cfg = *loaded

			// Flags win over config file and environment.
			if !cmd.Flags().Changed("color") {
				color = cfg.Color
			}
			if debug || cfg.Debug {
				logging.SetLevel("debug")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to config file (default: discovered .inkmark.yaml)")

	// Add subcommands.
	rootCmd.AddCommand(newTreeCommand(&color))
	rootCmd.AddCommand(newMarkupCommand(&color, cfg))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
