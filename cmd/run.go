package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"coursedeck/internal/app"
	"coursedeck/internal/config"
	"coursedeck/internal/course"
	"coursedeck/internal/logging"
	"coursedeck/internal/progress"
	"coursedeck/internal/tutor"
)

// runApp loads config, opens the progress store, builds the tutor
// bridge, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog := logging.FromPath(cfg.LogFile)
	defer func() { _ = closeLog() }()

	store, closeStore, err := openStore(cmd, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// The bridge degrades gracefully without credentials: the tutor
	// screen stays reachable and explains what is missing.
	bridge := buildBridge(cmd, cfg, log)

	return app.Run(app.Options{
		Catalog: course.Catalog,
		Store:   store,
		Bridge:  bridge,
	})
}

// loadConfig resolves the config path and loads (or seeds) the file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the SQLite-backed progress store.
func openStore(cmd *cobra.Command, cfg config.Config, log *slog.Logger) (*progress.Store, func(), error) {
	dbPath, err := resolveDBPath(cmd, cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	backend, err := progress.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	closeFn := func() { _ = backend.Close() }
	return progress.NewStore(backend, log), closeFn, nil
}

// buildBridge constructs the tutor bridge. A missing or invalid
// credential yields an unconfigured bridge, never a startup failure.
func buildBridge(cmd *cobra.Command, cfg config.Config, log *slog.Logger) *tutor.Bridge {
	tc, ok := cfg.TutorConfig()
	if !ok {
		return tutor.NewBridge(nil, log)
	}
	provider, err := tutor.NewProvider(cmd.Context(), tc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Tutor provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI tutor will be unavailable.")
		return tutor.NewBridge(nil, log)
	}
	return tutor.NewBridge(provider, log)
}
