// Package main is the entry point for the habitica-actions CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "habitica-actions",
	Short: "Automate routine Habitica account actions",
	Long: `habitica-actions buys from the armoire, casts spells, hatches and feeds pets,
joins party quests and buys health potions for one configured account.

It is meant to be started by a scheduler such as cron or a systemd timer.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&traceEnabled, "trace", false, "Write trace spans to stdout")

	rootCmd.AddCommand(armoireCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(earthquakeCmd)
	rootCmd.AddCommand(toolsOfTradeCmd)
	rootCmd.AddCommand(hatchCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(joinQuestCmd)
	rootCmd.AddCommand(healthPotionCmd)
	rootCmd.AddCommand(runCmd)
}
