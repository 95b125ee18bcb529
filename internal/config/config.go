package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat skyops configuration.
type Config struct {
	Version      string `json:"version"`
	DatabasePath string `json:"database_path,omitempty"` // overrides ~/.skyops/skyops.db
	CSVDir       string `json:"csv_dir,omitempty"`       // default directory for import/export
}

// LoadConfig reads .skyops/config.json from the specified directory.
// Resolution order: the given directory only (no home fallback).
// Returns an error if no config is found - callers fall back to defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".skyops", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json under dir/.skyops.
func SaveConfig(dir string, cfg *Config) error {
	skyopsDir := filepath.Join(dir, ".skyops")
	if err := os.MkdirAll(skyopsDir, 0755); err != nil {
		return fmt.Errorf("failed to create .skyops dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(skyopsDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultCSVDir returns the directory used for CSV import/export when the
// config does not name one.
func DefaultCSVDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".skyops", "csv"), nil
}
