// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Reports ReportsConfig `toml:"reports"`
	Storage StorageConfig `toml:"storage"`
	AI      AIConfig      `toml:"ai"`
	UI      UIConfig      `toml:"ui"`
}

// ReportsConfig holds the report directory settings.
type ReportsConfig struct {
	Dir string `toml:"dir"` // directory with index.json, daily/, weekly/
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// AIConfig holds the settings for AI overview generation.
type AIConfig struct {
	Model   string `toml:"model"`    // e.g. "gpt-4o-mini"
	BaseURL string `toml:"base_url"` // OpenAI-compatible endpoint, empty for the default
	APIKey  string `toml:"api_key"`  // usually left empty and set via PULSO_AI_API_KEY
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha" or "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Reports: ReportsConfig{
			Dir: defaultReportsDir(),
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		AI: AIConfig{
			Model: "gpt-4o-mini",
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

func defaultReportsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "reports"
	}
	return filepath.Join(home, ".local", "share", "pulso", "reports")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pulso.db"
	}
	return filepath.Join(home, ".local", "share", "pulso", "pulso.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "pulso", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Reports.Dir = expandPath(cfg.Reports.Dir)
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PULSO_REPORTS_DIR"); v != "" {
		cfg.Reports.Dir = v
	}
	if v := os.Getenv("PULSO_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("PULSO_AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := os.Getenv("PULSO_AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("PULSO_AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("PULSO_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Reports.Dir == "" {
		return errors.New("reports dir must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.AI.Model == "" {
		return errors.New("ai model must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
