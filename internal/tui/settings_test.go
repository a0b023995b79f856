package tui

import (
	"testing"

	"github.com/1broseidon/cornerpick/internal/config"
	"github.com/1broseidon/cornerpick/internal/geom"
)

func TestSettingsValuesRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Position = geom.Position{Screen: 1, Corner: geom.BottomRight}
	cfg.LogLevel = "debug"

	v := valuesFromConfig(cfg, 2)
	if v.screen != 1 || v.corner != int(geom.BottomRight) || v.logLevel != "debug" || !v.preview {
		t.Fatalf("unexpected values %+v", v)
	}

	v.screen = 0
	v.corner = int(geom.TopRight)
	v.preview = false
	v.logLevel = "error"
	v.apply(cfg)

	if cfg.Position != (geom.Position{Screen: 0, Corner: geom.TopRight}) {
		t.Fatalf("expected screen 0 top-right, got %v", cfg.Position)
	}
	if cfg.PreviewEnabled || cfg.LogLevel != "error" {
		t.Fatalf("expected preview off and log level error, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestSettingsValuesDropMissingScreen(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Position = geom.Position{Screen: 3, Corner: geom.TopLeft}

	v := valuesFromConfig(cfg, 2)
	if v.screen != -1 || v.corner != int(geom.NoCorner) {
		t.Fatalf("expected no selection for a missing screen, got %+v", v)
	}
}

func TestSettingsApplyNoScreenClearsPosition(t *testing.T) {
	cfg := config.DefaultConfig()
	v := valuesFromConfig(cfg, 1)
	v.screen = -1
	v.corner = int(geom.BottomLeft)
	v.apply(cfg)

	if cfg.Position != geom.None {
		t.Fatalf("expected none, got %v", cfg.Position)
	}
}

func TestSettingsOptions(t *testing.T) {
	screens := screenOptions([]string{"Screen 1", "Screen 2"})
	if len(screens) != 3 || screens[0].Value != -1 || screens[2].Value != 1 || screens[2].Key != "Screen 2" {
		t.Fatalf("unexpected screen options %+v", screens)
	}

	corners := cornerOptions()
	if len(corners) != 5 || corners[4].Key != "bottom-right" || corners[4].Value != int(geom.BottomRight) {
		t.Fatalf("unexpected corner options %+v", corners)
	}

	if newSettingsForm(&settingsValues{}, []string{"Screen 1"}) == nil {
		t.Fatalf("expected a form")
	}
}
