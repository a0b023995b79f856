package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"
)

// GetCurrentDesktop returns the current virtual desktop number (0-indexed).
// Uses _NET_CURRENT_DESKTOP atom. Returns 0 with an error if detection fails.
func (c *Connection) GetCurrentDesktop() (int, error) {
	desktop, err := ewmh.CurrentDesktopGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get current desktop: %w", err)
	}
	return int(desktop), nil
}

// WorkArea returns the _NET_WORKAREA of the current desktop. The work area
// spans all monitors, so callers intersect it with a single monitor.
func (c *Connection) WorkArea() (Monitor, error) {
	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil {
		return Monitor{}, fmt.Errorf("failed to get work area: %w", err)
	}
	if len(workArea) == 0 {
		return Monitor{}, fmt.Errorf("work area is empty")
	}

	desktopIndex := 0
	if currentDesktop, err := c.GetCurrentDesktop(); err == nil {
		if currentDesktop >= 0 && currentDesktop < len(workArea) {
			desktopIndex = currentDesktop
		}
	}

	wa := workArea[desktopIndex]
	return Monitor{
		X:      int(wa.X),
		Y:      int(wa.Y),
		Width:  int(wa.Width),
		Height: int(wa.Height),
	}, nil
}
