package config

import (
	"fmt"
	"strings"

	"github.com/1broseidon/cornerpick/internal/geom"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw over the defaults.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Display != nil {
		cfg.Display = strings.TrimSpace(*raw.Display)
	}
	if raw.XAuthority != nil {
		cfg.XAuthority = strings.TrimSpace(*raw.XAuthority)
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*raw.LogLevel))
	}
	if raw.PreviewEnabled != nil {
		cfg.PreviewEnabled = *raw.PreviewEnabled
	}
	if raw.Position != nil {
		if raw.Position.Screen != nil {
			cfg.Position.Screen = *raw.Position.Screen
		}
		if raw.Position.Corner != nil {
			cfg.Position.Corner = geom.Corner(*raw.Position.Corner)
		}
	}

	return cfg, nil
}
