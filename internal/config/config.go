// Package config handles loading and managing imsgexport configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SourceConfig holds settings for the Messages database being read.
type SourceConfig struct {
	DBPath string `toml:"db_path"` // path to chat.db
}

// ExportConfig holds transcript output settings.
type ExportConfig struct {
	OutputDir string `toml:"output_dir"` // directory for transcript files
}

// Config represents the imsgexport configuration. All defaults live here;
// the database layer takes explicit paths and holds none of its own.
type Config struct {
	Source SourceConfig `toml:"source"`
	Export ExportConfig `toml:"export"`

	// Computed at load time, not from the config file.
	HomeDir string `toml:"-"`
}

// DefaultHome returns the default imsgexport home directory.
// Respects the IMSGEXPORT_HOME environment variable.
func DefaultHome() string {
	if h := os.Getenv("IMSGEXPORT_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".imsgexport"
	}
	return filepath.Join(home, ".imsgexport")
}

// DefaultDBPath returns the well-known location of the Messages history
// database for the current user.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "chat.db"
	}
	return filepath.Join(home, "Library", "Messages", "chat.db")
}

// Load reads the configuration from the specified file. If path is empty,
// the default location (<home>/config.toml) is used, and a missing file
// just yields the defaults.
func Load(path string) (*Config, error) {
	homeDir := DefaultHome()

	if path == "" {
		path = filepath.Join(homeDir, "config.toml")
	}

	cfg := &Config{
		HomeDir: homeDir,
		Source: SourceConfig{
			DBPath: DefaultDBPath(),
		},
		Export: ExportConfig{
			OutputDir: filepath.Join(homeDir, "transcripts"),
		},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Source.DBPath = expandPath(cfg.Source.DBPath)
	cfg.Export.OutputDir = expandPath(cfg.Export.OutputDir)

	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
