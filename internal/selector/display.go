package selector

import (
	"fmt"

	"github.com/1broseidon/cornerpick/internal/geom"
)

// DisplaySource enumerates the physical monitors of the desktop.
type DisplaySource interface {
	// Monitors returns the geometry of every monitor in real screen
	// coordinates. The index of a monitor is its screen number.
	Monitors() []geom.Rect
	// AvailableGeometry returns the part of a monitor not covered by
	// panels or docks.
	AvailableGeometry(screen int) (geom.Rect, error)
}

// Indicator is the preview window shown on the real screen while a corner
// of the miniature is hovered.
type Indicator interface {
	Show(r geom.Rect) error
	Hide()
}

// StaticDisplay serves a fixed monitor set. Available geometry equals the
// monitor geometry unless overridden in Available.
type StaticDisplay struct {
	Screens   []geom.Rect
	Available map[int]geom.Rect
}

func (d StaticDisplay) Monitors() []geom.Rect {
	return d.Screens
}

func (d StaticDisplay) AvailableGeometry(screen int) (geom.Rect, error) {
	if screen < 0 || screen >= len(d.Screens) {
		return geom.Rect{}, fmt.Errorf("screen %d out of range (have %d)", screen, len(d.Screens))
	}
	if r, ok := d.Available[screen]; ok {
		return r, nil
	}
	return d.Screens[screen], nil
}

type nopIndicator struct{}

func (nopIndicator) Show(geom.Rect) error { return nil }
func (nopIndicator) Hide()                {}
