package platform

import (
	"errors"
	"testing"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

var _ selector.DisplaySource = (*Screens)(nil)

type flakyBackend struct {
	displays []Display
	err      error
}

func (b *flakyBackend) Displays() ([]Display, error) {
	return b.displays, b.err
}

func TestScreensServesBoundsAndUsableArea(t *testing.T) {
	backend := StaticBackend{
		{ID: 0, Name: "eDP-1", Bounds: geom.Rect{Width: 1920, Height: 1080}, Usable: geom.Rect{Y: 32, Width: 1920, Height: 1048}},
		{ID: 1, Name: "HDMI-1", Bounds: geom.Rect{X: 1920, Width: 2560, Height: 1440}},
	}
	screens, err := NewScreens(backend)
	if err != nil {
		t.Fatalf("NewScreens: %v", err)
	}

	monitors := screens.Monitors()
	if len(monitors) != 2 || monitors[1] != (geom.Rect{X: 1920, Width: 2560, Height: 1440}) {
		t.Fatalf("unexpected monitors: %+v", monitors)
	}

	avail, err := screens.AvailableGeometry(0)
	if err != nil {
		t.Fatalf("AvailableGeometry(0): %v", err)
	}
	if avail != (geom.Rect{Y: 32, Width: 1920, Height: 1048}) {
		t.Fatalf("expected usable area for screen 0, got %+v", avail)
	}

	avail, err = screens.AvailableGeometry(1)
	if err != nil {
		t.Fatalf("AvailableGeometry(1): %v", err)
	}
	if avail != monitors[1] {
		t.Fatalf("expected full bounds for screen 1, got %+v", avail)
	}

	if _, err := screens.AvailableGeometry(2); err == nil {
		t.Fatalf("expected error for out-of-range screen")
	}
	if _, err := screens.AvailableGeometry(-1); err == nil {
		t.Fatalf("expected error for negative screen")
	}
}

func TestScreensRefreshKeepsCacheOnError(t *testing.T) {
	backend := &flakyBackend{displays: []Display{{ID: 0, Bounds: geom.Rect{Width: 800, Height: 600}}}}
	screens, err := NewScreens(backend)
	if err != nil {
		t.Fatalf("NewScreens: %v", err)
	}

	backend.err = errors.New("connection lost")
	if err := screens.Refresh(); err == nil {
		t.Fatalf("expected refresh error")
	}
	if got := len(screens.Displays()); got != 1 {
		t.Fatalf("expected cached display to survive, got %d displays", got)
	}

	backend.err = nil
	backend.displays = append(backend.displays, Display{ID: 1, Bounds: geom.Rect{X: 800, Width: 800, Height: 600}})
	if err := screens.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := len(screens.Monitors()); got != 2 {
		t.Fatalf("expected 2 monitors after refresh, got %d", got)
	}
}

func TestNewScreensPropagatesBackendError(t *testing.T) {
	_, err := NewScreens(&flakyBackend{err: errors.New("no display")})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestVirtualBackendLaysOutSideBySide(t *testing.T) {
	displays, _ := VirtualBackend(3, 1280, 720).Displays()
	if len(displays) != 3 {
		t.Fatalf("expected 3 displays, got %d", len(displays))
	}
	if displays[2].Bounds != (geom.Rect{X: 2560, Width: 1280, Height: 720}) {
		t.Fatalf("unexpected bounds for display 2: %+v", displays[2].Bounds)
	}
	if displays[2].Usable != displays[2].Bounds {
		t.Fatalf("expected usable area to default to bounds")
	}
}

func TestScreensDriveSelectorPopupRect(t *testing.T) {
	screens, err := NewScreens(StaticBackend{
		{ID: 0, Bounds: geom.Rect{Width: 1000, Height: 800}, Usable: geom.Rect{Y: 100, Width: 1000, Height: 700}},
	})
	if err != nil {
		t.Fatalf("NewScreens: %v", err)
	}
	r, ok := selector.PopupRect(screens, geom.Position{Screen: 0, Corner: geom.BottomLeft})
	if !ok {
		t.Fatalf("expected popup rect")
	}
	// min(1000,700)*0.3 = 210
	want := geom.Rect{X: 0, Y: 590, Width: 210, Height: 210}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
}
