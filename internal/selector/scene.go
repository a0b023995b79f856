package selector

import (
	"fmt"

	"github.com/1broseidon/cornerpick/internal/geom"
)

// ScreenView is one miniature screen as a painter should draw it.
type ScreenView struct {
	Index   int
	Label   string
	Rect    geom.Rect
	Corners [geom.CornerCount]geom.Rect
}

// Scene is a paint snapshot of the selector. Painters draw every screen
// and its corner zones first, then the hover zone, then the selected zone.
type Scene struct {
	Size    geom.Size
	Screens []ScreenView

	Hovered      geom.Position
	HoverZone    geom.Rect
	HoverVisible bool

	Selected        geom.Position
	SelectedZone    geom.Rect
	SelectedVisible bool
}

// ScreenLabel is the text shown inside miniature screen i.
func ScreenLabel(i int) string {
	return fmt.Sprintf("Screen %d", i+1)
}

// Describe renders p with 1-based screen labels, e.g. "Screen 2 top-left".
// A screen without a corner is just its label and no screen is "none".
func Describe(p geom.Position) string {
	if !p.HasScreen() {
		return "none"
	}
	if !p.Corner.Valid() {
		return ScreenLabel(p.Screen)
	}
	return ScreenLabel(p.Screen) + " " + p.Corner.String()
}

// Scene returns the current paint snapshot. The hover zone is only visible
// when the hovered corner differs from the committed one.
func (s *Selector) Scene() Scene {
	sc := Scene{
		Size:     s.size,
		Screens:  make([]ScreenView, len(s.screens)),
		Hovered:  s.hovered,
		Selected: s.position,
	}
	for i, r := range s.screens {
		sc.Screens[i] = ScreenView{
			Index:   i,
			Label:   ScreenLabel(i),
			Rect:    r,
			Corners: s.corners[i],
		}
	}

	if s.hovered != s.position {
		if zone, ok := s.zone(s.hovered); ok {
			sc.HoverZone = zone
			sc.HoverVisible = true
		}
	}
	if zone, ok := s.zone(s.position); ok {
		sc.SelectedZone = zone
		sc.SelectedVisible = true
	}
	return sc
}

func (s *Selector) zone(p geom.Position) (geom.Rect, bool) {
	if !p.Valid() || p.Screen >= len(s.corners) {
		return geom.Rect{}, false
	}
	return s.corners[p.Screen][p.Corner], true
}
