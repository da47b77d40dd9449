// Package config loads the demo CLI configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/taginput/form"
)

const (
	DefaultMaxVisibleRows = 8
	DefaultPopupWidth     = 30
)

// Config holds CLI configuration stored at ~/.taginput/config.yaml.
type Config struct {
	// Catalog lists catalog files, merged in order.
	Catalog        []string `yaml:"catalog,omitempty"`
	Format         string   `yaml:"format,omitempty"`
	MaxVisibleRows int      `yaml:"max_visible_rows,omitempty"`
	PopupWidth     int      `yaml:"popup_width,omitempty"`
	MinX           int      `yaml:"min_x,omitempty"`
	LogFile        string   `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format:         string(form.FormatForm),
		MaxVisibleRows: DefaultMaxVisibleRows,
		PopupWidth:     DefaultPopupWidth,
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".taginput", "config.yaml")
}

// Load reads the config at Path.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and parses the config at path. A missing file yields
// Default.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges and the submission format.
func (c *Config) Validate() error {
	if _, err := form.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if c.MaxVisibleRows < 0 {
		return fmt.Errorf("max_visible_rows must be >= 0, got %d", c.MaxVisibleRows)
	}
	if c.PopupWidth < 0 {
		return fmt.Errorf("popup_width must be >= 0, got %d", c.PopupWidth)
	}
	if c.MinX < 0 {
		return fmt.Errorf("min_x must be >= 0, got %d", c.MinX)
	}
	return nil
}

// Save writes the config to Path.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the config to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
