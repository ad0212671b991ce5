package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/imsgexport/imsgexport/internal/chatdb"
	"github.com/imsgexport/imsgexport/internal/config"
)

var (
	cfgFile string
	dbPath  string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "imsgexport",
	Short: "Export iMessage history as plain-text transcripts",
	Long: `imsgexport reads the macOS Messages history database (chat.db)
and renders each conversation as a plain-text transcript, optionally
restricted to a date range.

The source database is opened strictly read-only and immutable, so a
concurrently running Messages.app is never disturbed and nothing is
ever written back to the store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set up logging
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dbPath != "" {
			cfg.Source.DBPath = dbPath
		}
		return nil
	},
}

// Execute runs the root command with a background context.
// Prefer ExecuteContext for signal-aware execution.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context,
// enabling graceful shutdown when the context is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// openDB opens the configured Messages database read-only.
func openDB() (*chatdb.DB, error) {
	logger.Debug("opening messages database", "path", cfg.Source.DBPath)
	db, err := chatdb.Open(cfg.Source.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.imsgexport/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to chat.db (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
