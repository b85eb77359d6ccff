// Package config loads and saves host-side widget settings as TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	UI      UISettings     `toml:"ui"`
	Catalog []CatalogEntry `toml:"catalog"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	// Placeholder is shown on the header line while nothing is selected.
	Placeholder string `toml:"placeholder"`
	// MaxVisibleRows caps how many rows one render shows; 0 means no cap.
	MaxVisibleRows int `toml:"max_visible_rows"`
	// AllowClear decides whether the widget offers a clear affordance.
	AllowClear bool `toml:"allow_clear"`
}

// CatalogEntry is one (label, detail) pair of the demo catalog.
type CatalogEntry struct {
	Label  string `toml:"label"`
	Detail string `toml:"detail"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a config service bound to the user config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "dropselect")
	os.MkdirAll(appDir, 0755)

	return &service{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// DefaultConfig returns the built-in configuration, including a small sample
// catalog so the demo works before any file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			Placeholder:    "Select…",
			MaxVisibleRows: 10,
			AllowClear:     true,
		},
		Catalog: []CatalogEntry{
			{Label: "Go", Detail: "Compiled, statically typed, built for concurrency."},
			{Label: "Rust", Detail: "Ownership and borrowing, no garbage collector."},
			{Label: "Python", Detail: "Dynamic, batteries included."},
			{Label: "OCaml", Detail: "ML-family language with a fast native compiler."},
			{Label: "Erlang", Detail: "Actor model, let-it-crash supervision trees."},
		},
	}
}

// Load loads the configuration from the default path, falling back to the
// defaults when no file exists yet.
func (s *service) Load() (*Config, error) {
	return s.LoadFromPath(s.filePath)
}

// Save saves the configuration to the default path.
func (s *service) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// LoadFromPath loads the configuration from a specific path.
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Fields a hand-edited file may leave out.
	if cfg.UI.Placeholder == "" {
		cfg.UI.Placeholder = DefaultConfig().UI.Placeholder
	}
	return &cfg, nil
}

// SaveToPath saves the configuration to a specific path.
func (s *service) SaveToPath(config *Config, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
