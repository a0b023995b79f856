package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors retrieves all active monitors. XRandR is preferred; servers
// without it (or reporting no active CRTC) fall back to Xinerama and finally
// to the root window as a single monitor.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	monitors, randrErr := c.randrMonitors()
	if randrErr == nil && len(monitors) > 0 {
		return monitors, nil
	}

	monitors, xinErr := c.xineramaMonitors()
	if xinErr == nil && len(monitors) > 0 {
		return monitors, nil
	}

	screen := c.XUtil.Screen()
	if screen == nil || screen.WidthInPixels == 0 || screen.HeightInPixels == 0 {
		if randrErr != nil {
			return nil, randrErr
		}
		return nil, fmt.Errorf("no monitors found")
	}
	return []Monitor{{
		ID:     0,
		Name:   "root",
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}}, nil
}

func (c *Connection) randrMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor

	// Query each CRTC for active monitors
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

func (c *Connection) xineramaMonitors() ([]Monitor, error) {
	if err := xinerama.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("xinerama init failed: %w", err)
	}

	reply, err := xinerama.QueryScreens(c.XUtil.Conn()).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query xinerama screens: %w", err)
	}

	monitors := make([]Monitor, 0, len(reply.ScreenInfo))
	for i, scr := range reply.ScreenInfo {
		if scr.Width == 0 || scr.Height == 0 {
			continue
		}
		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   fmt.Sprintf("Xinerama%d", i),
			X:      int(scr.XOrg),
			Y:      int(scr.YOrg),
			Width:  int(scr.Width),
			Height: int(scr.Height),
		})
	}
	return monitors, nil
}

// UsableArea returns the part of monitor not reserved by docks and panels.
// Dock struts are preferred; when no dock reserves space the monitor is
// intersected with the EWMH work area instead.
func (c *Connection) UsableArea(monitor Monitor) Monitor {
	usable := monitor
	if applyDockStruts(c, &usable) {
		return usable
	}

	wa, err := c.WorkArea()
	if err != nil {
		return usable
	}
	return intersectWorkArea(usable, wa)
}

// intersectWorkArea narrows monitor to the work area when the two overlap.
func intersectWorkArea(monitor, wa Monitor) Monitor {
	x1 := max(monitor.X, wa.X)
	y1 := max(monitor.Y, wa.Y)
	x2 := min(monitor.X+monitor.Width, wa.X+wa.Width)
	y2 := min(monitor.Y+monitor.Height, wa.Y+wa.Height)

	if x2 > x1 && y2 > y1 {
		monitor.X = x1
		monitor.Y = y1
		monitor.Width = x2 - x1
		monitor.Height = y2 - y1
	}
	return monitor
}

type dockStruts struct {
	left   int
	right  int
	top    int
	bottom int
}

func applyDockStruts(c *Connection, monitor *Monitor) bool {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return false
	}
	rootWidth := int(rootGeom.Width)
	rootHeight := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return false
	}

	var struts dockStruts
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil {
			continue
		}

		isDock := false
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DOCK" {
				isDock = true
				break
			}
		}
		if !isDock {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			updateStrutsForMonitor(monitor, rootWidth, rootHeight, sp, &struts)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			updateStrutsForMonitor(monitor, rootWidth, rootHeight, fullStrutPartial(s, rootWidth, rootHeight), &struts)
		}
	}

	return shrinkByStruts(monitor, struts)
}

// fullStrutPartial expands a plain _NET_WM_STRUT into partial form spanning
// the whole root window.
func fullStrutPartial(s *ewmh.WmStrut, rootWidth, rootHeight int) *ewmh.WmStrutPartial {
	return &ewmh.WmStrutPartial{
		Left:         s.Left,
		Right:        s.Right,
		Top:          s.Top,
		Bottom:       s.Bottom,
		LeftStartY:   0,
		LeftEndY:     uint(rootHeight - 1),
		RightStartY:  0,
		RightEndY:    uint(rootHeight - 1),
		TopStartX:    0,
		TopEndX:      uint(rootWidth - 1),
		BottomStartX: 0,
		BottomEndX:   uint(rootWidth - 1),
	}
}

// shrinkByStruts removes the accumulated struts from monitor and reports
// whether any strut applied.
func shrinkByStruts(monitor *Monitor, struts dockStruts) bool {
	if struts.left == 0 && struts.right == 0 && struts.top == 0 && struts.bottom == 0 {
		return false
	}

	monitor.X += struts.left
	monitor.Y += struts.top
	monitor.Width -= (struts.left + struts.right)
	monitor.Height -= (struts.top + struts.bottom)

	if monitor.Width < 1 {
		monitor.Width = 1
	}
	if monitor.Height < 1 {
		monitor.Height = 1
	}

	return true
}

func updateStrutsForMonitor(monitor *Monitor, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial, acc *dockStruts) {
	monX1 := monitor.X
	monY1 := monitor.Y
	monX2 := monitor.X + monitor.Width
	monY2 := monitor.Y + monitor.Height

	// Top strut: y=[0,Top), x=[TopStartX,TopEndX]
	if sp.Top > 0 {
		x1 := int(sp.TopStartX)
		x2 := int(sp.TopEndX) + 1
		y1 := 0
		y2 := int(sp.Top)
		if intersects(monX1, monY1, monX2, monY2, x1, y1, x2, y2) {
			acc.top = max(acc.top, intersectionSize(monX1, monY1, monX2, monY2, x1, y1, x2, y2).h)
		}
	}

	// Bottom strut: y=[rootHeight-Bottom,rootHeight), x=[BottomStartX,BottomEndX]
	if sp.Bottom > 0 {
		x1 := int(sp.BottomStartX)
		x2 := int(sp.BottomEndX) + 1
		y2 := rootHeight
		y1 := rootHeight - int(sp.Bottom)
		if intersects(monX1, monY1, monX2, monY2, x1, y1, x2, y2) {
			acc.bottom = max(acc.bottom, intersectionSize(monX1, monY1, monX2, monY2, x1, y1, x2, y2).h)
		}
	}

	// Left strut: x=[0,Left), y=[LeftStartY,LeftEndY]
	if sp.Left > 0 {
		x1 := 0
		x2 := int(sp.Left)
		y1 := int(sp.LeftStartY)
		y2 := int(sp.LeftEndY) + 1
		if intersects(monX1, monY1, monX2, monY2, x1, y1, x2, y2) {
			acc.left = max(acc.left, intersectionSize(monX1, monY1, monX2, monY2, x1, y1, x2, y2).w)
		}
	}

	// Right strut: x=[rootWidth-Right,rootWidth), y=[RightStartY,RightEndY]
	if sp.Right > 0 {
		x2 := rootWidth
		x1 := rootWidth - int(sp.Right)
		y1 := int(sp.RightStartY)
		y2 := int(sp.RightEndY) + 1
		if intersects(monX1, monY1, monX2, monY2, x1, y1, x2, y2) {
			acc.right = max(acc.right, intersectionSize(monX1, monY1, monX2, monY2, x1, y1, x2, y2).w)
		}
	}
}

type intersection struct {
	w int
	h int
}

func intersectionSize(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) intersection {
	x1 := max(ax1, bx1)
	y1 := max(ay1, by1)
	x2 := min(ax2, bx2)
	y2 := min(ay2, by2)

	if x2 <= x1 || y2 <= y1 {
		return intersection{}
	}
	return intersection{w: x2 - x1, h: y2 - y1}
}

func intersects(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) bool {
	isect := intersectionSize(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
	return isect.w > 0 && isect.h > 0
}
