package platform

import (
	"fmt"
	"sync"

	"github.com/1broseidon/cornerpick/internal/geom"
)

// Display describes a physical display and its usable work area.
type Display struct {
	ID     int       `json:"id"`
	Name   string    `json:"name"`
	Bounds geom.Rect `json:"bounds"`
	Usable geom.Rect `json:"usable"`
}

// Backend abstracts display enumeration across platforms.
type Backend interface {
	Displays() ([]Display, error)
}

// Screens caches the displays of a Backend and serves them as a selector
// display source. Screen numbers are indices into the cached slice.
type Screens struct {
	backend Backend

	mu       sync.RWMutex
	displays []Display
}

// NewScreens creates a display source and loads the backend's displays.
func NewScreens(backend Backend) (*Screens, error) {
	s := &Screens{backend: backend}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh re-reads the displays from the backend. The cache is left
// untouched on error.
func (s *Screens) Refresh() error {
	displays, err := s.backend.Displays()
	if err != nil {
		return fmt.Errorf("failed to enumerate displays: %w", err)
	}
	s.mu.Lock()
	s.displays = displays
	s.mu.Unlock()
	return nil
}

// Displays returns a copy of the cached displays.
func (s *Screens) Displays() []Display {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Display, len(s.displays))
	copy(out, s.displays)
	return out
}

// Monitors returns the full bounds of every cached display.
func (s *Screens) Monitors() []geom.Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]geom.Rect, len(s.displays))
	for i, d := range s.displays {
		out[i] = d.Bounds
	}
	return out
}

// AvailableGeometry returns the usable area of screen. Displays whose
// usable area is unknown report their full bounds.
func (s *Screens) AvailableGeometry(screen int) (geom.Rect, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if screen < 0 || screen >= len(s.displays) {
		return geom.Rect{}, fmt.Errorf("screen %d out of range (have %d)", screen, len(s.displays))
	}
	d := s.displays[screen]
	if d.Usable.Empty() {
		return d.Bounds, nil
	}
	return d.Usable, nil
}

// StaticBackend returns a fixed display list. Usable areas default to the
// full bounds.
type StaticBackend []Display

func (b StaticBackend) Displays() ([]Display, error) {
	out := make([]Display, len(b))
	for i, d := range b {
		if d.Usable.Empty() {
			d.Usable = d.Bounds
		}
		out[i] = d
	}
	return out, nil
}

// VirtualBackend builds a StaticBackend of count side-by-side displays of
// width x height. It backs headless runs where no display server exists.
func VirtualBackend(count, width, height int) StaticBackend {
	out := make(StaticBackend, count)
	for i := range out {
		out[i] = Display{
			ID:     i,
			Name:   fmt.Sprintf("virtual-%d", i),
			Bounds: geom.Rect{X: i * width, Width: width, Height: height},
		}
	}
	return out
}
