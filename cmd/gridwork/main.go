// Package main is the entry point for the gridwork CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridwork",
		Short:        "gridwork: grid layouts with swappable cells, rendered to the terminal or PNG",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "path to gridwork.toml (default: search up from the working directory)")
	root.PersistentFlags().String("log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(
		renderCmd(),
		snapshotCmd(),
		viewCmd(),
		partitionCmd(),
		initCmd(),
	)

	return root
}
