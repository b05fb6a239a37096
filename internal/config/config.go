// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete careconnect-tui configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Auth configuration
	Auth AuthConfig `toml:"auth" json:"auth"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// StorageConfig controls where portal data lives and how it is observed.
type StorageConfig struct {
	// DataDir is the directory holding the keyed blob files
	// (empty = default ~/.careconnect/data)
	DataDir string `toml:"data_dir" json:"data_dir"`
	// WatchEnabled turns on cross-instance change notifications
	WatchEnabled bool `toml:"watch_enabled" json:"watch_enabled"`
}

// AuthConfig controls session establishment behavior.
type AuthConfig struct {
	// SimulatedLatencyMs delays login/register completion, standing in
	// for a future real network call. Outcome-neutral; 0 disables it.
	SimulatedLatencyMs int `toml:"simulated_latency_ms" json:"simulated_latency_ms"`
}

// UIConfig contains terminal UI preferences.
type UIConfig struct {
	// Theme selects the color theme: "auto", "dark", "light"
	Theme string `toml:"theme" json:"theme"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
// The 1000ms latency matches the original portal's simulated API call.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Storage: StorageConfig{
			DataDir:      "",
			WatchEnabled: true,
		},
		Auth: AuthConfig{
			SimulatedLatencyMs: 1000,
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the careconnect configuration directory.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".careconnect"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir resolves the blob store directory, honoring the configured
// override.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, falling back to defaults when it does not
// exist. Environment overrides and validation are always applied.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadFile(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile decodes a TOML config file over cfg.
func LoadFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// Save writes the configuration to the default path.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(cfg, path)
}

// SaveFile writes the configuration as TOML with owner-only permissions.
func SaveFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# careconnect configuration file")
	fmt.Fprintln(file, "# Generated by careconnect - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

// ApplyEnvOverrides lets CARECONNECT_* variables override file values.
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("CARECONNECT_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if theme := os.Getenv("CARECONNECT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if latency := os.Getenv("CARECONNECT_LATENCY_MS"); latency != "" {
		if ms, err := strconv.Atoi(latency); err == nil && ms >= 0 {
			c.Auth.SimulatedLatencyMs = ms
		}
	}
	if watch := os.Getenv("CARECONNECT_WATCH"); watch != "" {
		c.Storage.WatchEnabled = watch == "1" || strings.ToLower(watch) == "true"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be auto, dark, or light (got %q)", c.UI.Theme)
	}

	if c.Auth.SimulatedLatencyMs < 0 {
		return fmt.Errorf("auth.simulated_latency_ms must not be negative (got %d)", c.Auth.SimulatedLatencyMs)
	}
	// Anything past a few seconds is a typo, not a preference.
	if c.Auth.SimulatedLatencyMs > 10000 {
		return fmt.Errorf("auth.simulated_latency_ms must be at most 10000 (got %d)", c.Auth.SimulatedLatencyMs)
	}
	return nil
}
