package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/cornerpick/internal/geom"
	"gopkg.in/yaml.v3"
)

// RawCorner supports either a corner index or a corner name:
//
//	corner: 3
//	corner: bottom-right
//	corner: none
type RawCorner geom.Corner

func (c *RawCorner) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("corner must be an integer or a corner name")
	}
	s := strings.TrimSpace(value.Value)
	// Out-of-range integers are left for Validate so the error carries a path.
	if n, err := strconv.Atoi(s); err == nil {
		*c = RawCorner(n)
		return nil
	}
	if strings.EqualFold(s, "none") {
		*c = RawCorner(geom.NoCorner)
		return nil
	}
	corner, err := geom.ParseCorner(s)
	if err != nil {
		return err
	}
	*c = RawCorner(corner)
	return nil
}

type RawPosition struct {
	Screen *int       `yaml:"screen"`
	Corner *RawCorner `yaml:"corner"`
}

type RawConfig struct {
	Display        *string      `yaml:"display"`
	XAuthority     *string      `yaml:"xauthority"`
	LogLevel       *string      `yaml:"log_level"`
	PreviewEnabled *bool        `yaml:"preview_enabled"`
	Position       *RawPosition `yaml:"position"`
}

// merge overlays o on r; fields set in o win.
func (r RawConfig) merge(o RawConfig) RawConfig {
	out := r
	if o.Display != nil {
		out.Display = o.Display
	}
	if o.XAuthority != nil {
		out.XAuthority = o.XAuthority
	}
	if o.LogLevel != nil {
		out.LogLevel = o.LogLevel
	}
	if o.PreviewEnabled != nil {
		out.PreviewEnabled = o.PreviewEnabled
	}
	if o.Position != nil {
		pos := RawPosition{}
		if out.Position != nil {
			pos = *out.Position
		}
		if o.Position.Screen != nil {
			pos.Screen = o.Position.Screen
		}
		if o.Position.Corner != nil {
			pos.Corner = o.Position.Corner
		}
		out.Position = &pos
	}
	return out
}
