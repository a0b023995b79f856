package overlay

import (
	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Frame colors
const (
	ColorPreview = 0x3498db // Blue
)

// DefaultThickness is the frame edge width in pixels.
const DefaultThickness = 3

// Sides holds the four edge rectangles of a frame.
type Sides struct {
	Top    geom.Rect
	Bottom geom.Rect
	Left   geom.Rect
	Right  geom.Rect
}

// FrameSides splits the outline of r into four bars of the given thickness.
// Top and bottom span the full width, left and right fill the gap between
// them. Degenerate sizes are clamped to 1 pixel.
func FrameSides(r geom.Rect, thickness int) Sides {
	t := max(thickness, 1)
	inner := max(r.Height-2*t, 1)
	return Sides{
		Top:    clampRect(geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: t}),
		Bottom: clampRect(geom.Rect{X: r.X, Y: r.Bottom() - t, Width: r.Width, Height: t}),
		Left:   clampRect(geom.Rect{X: r.X, Y: r.Y + t, Width: t, Height: inner}),
		Right:  clampRect(geom.Rect{X: r.Right() - t, Y: r.Y + t, Width: t, Height: inner}),
	}
}

func clampRect(r geom.Rect) geom.Rect {
	r.Width = max(r.Width, 1)
	r.Height = max(r.Height, 1)
	return r
}

// Frame is a rectangular outline made of 4 thin override-redirect windows.
// It shows where a popup would appear on the real screen.
type Frame struct {
	xu        *xgbutil.XUtil
	root      xproto.Window
	color     uint32
	thickness int

	top     xproto.Window
	bottom  xproto.Window
	left    xproto.Window
	right   xproto.Window
	created bool
	mapped  bool
}

// NewFrame creates a frame on the given connection. No windows are created
// until the first Show.
func NewFrame(xu *xgbutil.XUtil, root xproto.Window) *Frame {
	return &Frame{
		xu:        xu,
		root:      root,
		color:     ColorPreview,
		thickness: DefaultThickness,
	}
}

// Show outlines r, creating the windows on first use.
func (f *Frame) Show(r geom.Rect) error {
	if !f.created {
		if err := f.createWindows(); err != nil {
			return err
		}
	}

	sides := FrameSides(r, f.thickness)
	f.updateWindow(f.top, sides.Top)
	f.updateWindow(f.bottom, sides.Bottom)
	f.updateWindow(f.left, sides.Left)
	f.updateWindow(f.right, sides.Right)

	for _, wid := range f.windows() {
		xproto.MapWindow(f.xu.Conn(), wid)
	}
	f.mapped = true
	f.xu.Sync()
	return nil
}

// Hide unmaps the frame windows without destroying them.
func (f *Frame) Hide() {
	if !f.mapped {
		return
	}
	for _, wid := range f.windows() {
		xproto.UnmapWindow(f.xu.Conn(), wid)
	}
	f.mapped = false
	f.xu.Sync()
}

// Close destroys the frame windows.
func (f *Frame) Close() {
	for _, wid := range f.windows() {
		if wid != 0 {
			xproto.DestroyWindow(f.xu.Conn(), wid)
		}
	}
	f.top, f.bottom, f.left, f.right = 0, 0, 0, 0
	f.created = false
	f.mapped = false
}

func (f *Frame) windows() []xproto.Window {
	return []xproto.Window{f.top, f.bottom, f.left, f.right}
}

func (f *Frame) createWindows() error {
	for _, dst := range []*xproto.Window{&f.top, &f.bottom, &f.left, &f.right} {
		wid, err := f.createOverrideRedirectWindow()
		if err != nil {
			f.Close()
			return err
		}
		*dst = wid
	}
	f.created = true
	return nil
}

// createOverrideRedirectWindow creates a single window that bypasses the
// window manager.
func (f *Frame) createOverrideRedirectWindow() (xproto.Window, error) {
	conn := f.xu.Conn()
	screen := f.xu.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, err
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		f.root,
		0, 0,
		1, 1,
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwOverrideRedirect|xproto.CwBackPixel,
		// Values follow mask bit order: CwBackPixel before CwOverrideRedirect.
		[]uint32{0, 1},
	).Check()
	if err != nil {
		return 0, err
	}
	return wid, nil
}

// updateWindow moves, resizes and recolors a window, keeping it on top.
func (f *Frame) updateWindow(wid xproto.Window, r geom.Rect) {
	conn := f.xu.Conn()

	xproto.ConfigureWindow(
		conn,
		wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowStackMode,
		[]uint32{
			uint32(r.X),
			uint32(r.Y),
			uint32(r.Width),
			uint32(r.Height),
			xproto.StackModeAbove,
		},
	)

	xproto.ChangeWindowAttributes(conn, wid, xproto.CwBackPixel, []uint32{f.color})
	xproto.ClearArea(conn, false, wid, 0, 0, 0, 0)
}
