package tui

import (
	"strings"
	"testing"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

func TestPaintSceneLayersZones(t *testing.T) {
	sel := selector.New(selector.StaticDisplay{Screens: []geom.Rect{
		{X: 0, Y: 0, Width: 1024, Height: 512},
		{X: 1024, Y: 0, Width: 1024, Height: 512},
	}}, selector.Options{})
	sel.Resize(78, 38)
	// Hover screen 2 top-right: preview (71..73, 4..6).
	sel.PointerMove(geom.Point{X: 72, Y: 4})

	canvas := paintScene(sel.Scene(), 78, 19)

	if got := canvas[0][0].kind; got != cellEmpty {
		t.Fatalf("expected empty margin, got %v", got)
	}
	// Screen 1 top-left is the committed corner: preview (4..6, 4..6).
	if got := canvas[2][4].kind; got != cellSelected {
		t.Fatalf("expected selected zone at row 2 col 4, got %v", got)
	}
	if got := canvas[3][6].kind; got != cellSelected {
		t.Fatalf("expected selected zone at row 3 col 6, got %v", got)
	}
	if got := canvas[2][72].kind; got != cellHover {
		t.Fatalf("expected hover zone at row 2 col 72, got %v", got)
	}
	// Screen 1 top-right corner: preview (32..34, 4..6).
	if got := canvas[2][33].kind; got != cellCorner {
		t.Fatalf("expected plain corner at row 2 col 33, got %v", got)
	}
	if got := canvas[4][10].kind; got != cellScreen {
		t.Fatalf("expected screen body at row 4 col 10, got %v", got)
	}

	// Screen 1 is (4,4,31,11): label row (4+5)/2 = 4, starting at 4+(31-8)/2.
	var label strings.Builder
	for _, c := range canvas[4][15:23] {
		label.WriteRune(c.r)
	}
	if label.String() != "Screen 1" {
		t.Fatalf("expected centered label, got %q", label.String())
	}
}

func TestDrawLabelTruncatesToScreen(t *testing.T) {
	canvas := paintScene(selector.Scene{}, 10, 2)
	drawLabel(canvas, geom.Rect{X: 2, Y: 0, Width: 4, Height: 2}, "Screen 12")
	var got strings.Builder
	for _, c := range canvas[0][2:6] {
		got.WriteRune(c.r)
	}
	if got.String() != "Scre" {
		t.Fatalf("expected truncated label, got %q", got.String())
	}
}

func TestRenderCanvasFramesEveryRow(t *testing.T) {
	lines := renderCanvas(paintScene(selector.Scene{}, 6, 3), 6)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "╔══════╗") || !strings.Contains(lines[4], "╚══════╝") {
		t.Fatalf("unexpected frame:\n%s", strings.Join(lines, "\n"))
	}
	for _, l := range lines[1:4] {
		if strings.Count(l, "║") != 2 {
			t.Fatalf("row not framed: %q", l)
		}
	}
}
