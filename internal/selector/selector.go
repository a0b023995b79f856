package selector

import (
	"log/slog"

	"github.com/1broseidon/cornerpick/internal/geom"
)

// Phase describes where the pointer is relative to the miniature screens.
type Phase int

const (
	// PhaseIdle means the pointer is over no screen.
	PhaseIdle Phase = iota
	// PhaseHovering means the pointer is over a screen but not a corner.
	PhaseHovering
	// PhaseHoveringCorner means the pointer is over a corner that is not the
	// committed position.
	PhaseHoveringCorner
	// PhaseCommitted means the pointer is over the committed corner.
	PhaseCommitted
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseHovering:
		return "hovering"
	case PhaseHoveringCorner:
		return "hovering-corner"
	case PhaseCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Cursor is the pointer shape the host should display over the preview.
type Cursor int

const (
	// CursorArrow is the default pointer away from any corner zone.
	CursorArrow Cursor = iota
	// CursorPointer marks a clickable corner zone.
	CursorPointer
)

// Options configures a Selector.
type Options struct {
	// Position is the initially committed position. The zero value selects
	// the top-left corner of the first screen.
	Position geom.Position
	// DisablePreview starts with the real-screen indicator turned off.
	DisablePreview bool
	// Indicator shows the hovered corner on the real screen. Nil disables
	// the indicator entirely.
	Indicator Indicator
	Logger    *slog.Logger
}

// Selector holds the geometry and hover/commit state of a popup position
// picker. Host UI layers feed it pointer events and sizes and paint the
// Scene it produces. It is not safe for concurrent use; every call is
// expected on the host's UI thread.
type Selector struct {
	display   DisplaySource
	indicator Indicator
	logger    *slog.Logger

	monitors []geom.Rect
	total    geom.Rect

	size    geom.Size
	screens []geom.Rect
	corners [][geom.CornerCount]geom.Rect

	hovered  geom.Position
	position geom.Position
	preview  bool
	cursor   Cursor

	onHover      []func(geom.Position)
	onChange     []func(geom.Position)
	onInvalidate []func()
}

// New creates a selector for the monitors reported by display, laid out at
// its preferred size.
func New(display DisplaySource, opts Options) *Selector {
	s := &Selector{
		display:   display,
		indicator: opts.Indicator,
		logger:    opts.Logger,
		hovered:   geom.None,
		preview:   !opts.DisablePreview,
	}
	if s.indicator == nil {
		s.indicator = nopIndicator{}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	s.loadMonitors()
	s.position = opts.Position.Normalize(len(s.monitors))
	hint := s.SizeHint()
	s.Resize(hint.Width, hint.Height)
	return s
}

func (s *Selector) loadMonitors() {
	src := s.display.Monitors()
	s.monitors = make([]geom.Rect, len(src))
	copy(s.monitors, src)
	s.total = geom.TotalBounds(s.monitors)
}

// Reload re-reads the monitor set after a display reconfiguration. The
// hover state is cleared and the committed position is re-validated
// against the new screen count; a position that no longer fits is
// committed as its normalized form and reported to OnPositionChanged.
func (s *Selector) Reload() {
	prev := s.position
	s.loadMonitors()
	s.Resize(s.size.Width, s.size.Height)
	s.updateHover(geom.None, false)
	if prev.Normalize(len(s.monitors)) != prev {
		s.SetPosition(prev)
	}
}

// OnCornerHovered registers fn to run whenever the hovered position changes,
// including the change to geom.None when the pointer leaves.
func (s *Selector) OnCornerHovered(fn func(geom.Position)) {
	s.onHover = append(s.onHover, fn)
}

// OnPositionChanged registers fn to run whenever a position is committed or
// set programmatically.
func (s *Selector) OnPositionChanged(fn func(geom.Position)) {
	s.onChange = append(s.onChange, fn)
}

// OnInvalidate registers fn to run whenever the preview needs repainting.
func (s *Selector) OnInvalidate(fn func()) {
	s.onInvalidate = append(s.onInvalidate, fn)
}

// Resize recomputes the scaled screens and their corner zones for a preview
// area of width x height.
func (s *Selector) Resize(width, height int) {
	s.size = geom.Size{Width: width, Height: height}
	s.screens = geom.ScaledLayout(s.monitors, s.total, width, height, geom.PreviewMargin)
	s.corners = geom.LayoutCorners(s.screens)
	s.invalidate()
}

// PointerMove updates the hover state for a pointer at p in preview
// coordinates.
func (s *Selector) PointerMove(p geom.Point) {
	s.updateHover(geom.HitTest(p, s.screens, s.corners), false)
}

// PointerLeave clears the hover state.
func (s *Selector) PointerLeave() {
	s.updateHover(geom.None, false)
}

// PointerRelease commits the corner under p, if any, and reports whether a
// commit happened.
func (s *Selector) PointerRelease(p geom.Point) bool {
	s.PointerMove(p)
	if !s.hovered.Valid() {
		return false
	}
	s.SetPosition(s.hovered)
	return true
}

// SetPosition commits p. Indices outside the current monitor set are
// stored as -1.
func (s *Selector) SetPosition(p geom.Position) {
	s.position = p.Normalize(len(s.monitors))
	s.invalidate()
	s.logger.Debug("position changed", "position", s.position.String())
	for _, fn := range s.onChange {
		fn(s.position)
	}
}

// Position returns the committed position.
func (s *Selector) Position() geom.Position {
	return s.position
}

// Hovered returns the position currently under the pointer.
func (s *Selector) Hovered() geom.Position {
	return s.hovered
}

// EnablePreview toggles the real-screen indicator and refreshes it for the
// current hover state.
func (s *Selector) EnablePreview(enabled bool) {
	s.preview = enabled
	s.updateHover(s.hovered, true)
}

// PreviewEnabled reports whether hovering shows the real-screen indicator.
func (s *Selector) PreviewEnabled() bool {
	return s.preview
}

// Cursor returns the pointer shape for the current hover state.
func (s *Selector) Cursor() Cursor {
	return s.cursor
}

// Phase returns the interaction phase derived from the hover and commit
// state.
func (s *Selector) Phase() Phase {
	switch {
	case !s.hovered.HasScreen():
		return PhaseIdle
	case !s.hovered.Valid():
		return PhaseHovering
	case s.hovered == s.position:
		return PhaseCommitted
	default:
		return PhaseHoveringCorner
	}
}

// SizeHint returns the preferred preview size: the monitor bounds scaled to
// fit a 300x300 box.
func (s *Selector) SizeHint() geom.Size {
	return geom.PreviewSizeHint(s.total)
}

// Size returns the preview size of the last Resize.
func (s *Selector) Size() geom.Size {
	return s.size
}

// ScreenCount returns the number of monitors.
func (s *Selector) ScreenCount() int {
	return len(s.monitors)
}

// Monitors returns a copy of the real monitor geometry.
func (s *Selector) Monitors() []geom.Rect {
	out := make([]geom.Rect, len(s.monitors))
	copy(out, s.monitors)
	return out
}

// TotalBounds returns the rectangle enclosing all monitors.
func (s *Selector) TotalBounds() geom.Rect {
	return s.total
}

// ScreenRects returns a copy of the scaled screen rectangles.
func (s *Selector) ScreenRects() []geom.Rect {
	out := make([]geom.Rect, len(s.screens))
	copy(out, s.screens)
	return out
}

// CornerRects returns a copy of the corner zones of every scaled screen.
func (s *Selector) CornerRects() [][geom.CornerCount]geom.Rect {
	out := make([][geom.CornerCount]geom.Rect, len(s.corners))
	copy(out, s.corners)
	return out
}

// PopupRect returns the real-screen rectangle of the corner zone named by
// p, based on the monitor's available geometry.
func (s *Selector) PopupRect(p geom.Position) (geom.Rect, bool) {
	return PopupRect(s.display, p)
}

// PopupRect resolves the real-screen corner zone of p on display.
func PopupRect(display DisplaySource, p geom.Position) (geom.Rect, bool) {
	if !p.Valid() {
		return geom.Rect{}, false
	}
	avail, err := display.AvailableGeometry(p.Screen)
	if err != nil {
		return geom.Rect{}, false
	}
	return geom.CornerRects(avail)[p.Corner], true
}

func (s *Selector) updateHover(p geom.Position, force bool) {
	if p == s.hovered && !force {
		return
	}
	s.hovered = p
	s.invalidate()

	if p.Valid() {
		s.cursor = CursorPointer
		s.showIndicator(p)
	} else {
		s.indicator.Hide()
		s.cursor = CursorArrow
	}

	for _, fn := range s.onHover {
		fn(s.hovered)
	}
}

func (s *Selector) showIndicator(p geom.Position) {
	if !s.preview {
		s.indicator.Hide()
		return
	}
	zone, ok := s.PopupRect(p)
	if !ok {
		s.logger.Warn("no available geometry for hovered screen", "screen", p.Screen)
		s.indicator.Hide()
		return
	}
	if err := s.indicator.Show(zone); err != nil {
		s.logger.Warn("failed to show preview indicator", "error", err)
	}
}

func (s *Selector) invalidate() {
	for _, fn := range s.onInvalidate {
		fn()
	}
}
