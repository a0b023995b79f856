package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/1broseidon/cornerpick/internal/geom"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Display        string        `yaml:"display,omitempty"`
	XAuthority     string        `yaml:"xauthority,omitempty"`
	LogLevel       string        `yaml:"log_level"`
	PreviewEnabled bool          `yaml:"preview_enabled"`
	Position       geom.Position `yaml:"position"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		PreviewEnabled: true,
		Position:       geom.Position{Screen: 0, Corner: geom.TopLeft},
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if c.Position.Screen < -1 {
		return &ValidationError{Path: "position.screen", Err: fmt.Errorf("screen must be >= -1")}
	}
	if c.Position.Corner < geom.NoCorner || c.Position.Corner > geom.BottomRight {
		return &ValidationError{Path: "position.corner", Err: fmt.Errorf("corner must be between -1 and 3")}
	}
	return nil
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ApplyEnvironment exports the display overrides so X11 and GUI toolkits
// connect to the configured server.
func (c *Config) ApplyEnvironment() error {
	if c.Display != "" {
		if err := os.Setenv("DISPLAY", c.Display); err != nil {
			return fmt.Errorf("failed to set DISPLAY: %w", err)
		}
	}
	if c.XAuthority != "" {
		if err := os.Setenv("XAUTHORITY", c.XAuthority); err != nil {
			return fmt.Errorf("failed to set XAUTHORITY: %w", err)
		}
	}
	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path, creating the parent directory.
//
// Note: this marshals the effective config and will not preserve comments
// from the original YAML.
func Save(path string, c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
