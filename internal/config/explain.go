package config

import (
	"fmt"
	"strings"
)

// ExplainPaths lists every path Explain understands.
var ExplainPaths = []string{
	"display",
	"xauthority",
	"log_level",
	"preview_enabled",
	"position.screen",
	"position.corner",
}

// Explain returns the effective value at the given YAML-like path and its source.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch path {
	case "display":
		return cfg.Display, nil
	case "xauthority":
		return cfg.XAuthority, nil
	case "log_level":
		return cfg.LogLevel, nil
	case "preview_enabled":
		return cfg.PreviewEnabled, nil
	case "position":
		return cfg.Position, nil
	case "position.screen":
		return cfg.Position.Screen, nil
	case "position.corner":
		return cfg.Position.Corner, nil
	default:
		return nil, fmt.Errorf("unknown config path %q", path)
	}
}

func (s Source) String() string {
	switch s.Kind {
	case SourceFile:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	case SourceDefault:
		return "default"
	default:
		return string(s.Kind)
	}
}
