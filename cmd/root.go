package cmd

import (
	"coursedeck/internal/progress"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursedeck",
	Short: "Terminal course player with an AI tutor",
	Long:  "Coursedeck — a terminal course player for the Monday.com CRM development masterclass, with progress tracking and a search-grounded AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURSEDECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")

	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then COURSEDECK_DB / the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, progress.EnsureDir(p)
	}
	if configured != "" {
		return configured, progress.EnsureDir(configured)
	}
	return progress.DefaultDBPath()
}
