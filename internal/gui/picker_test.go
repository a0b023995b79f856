package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

// Two 1024x512 monitors in a 256x256 picker: screens at (4,4,120,56) and
// (132,4,120,56) with 16px corner zones.
func newTestPicker(t *testing.T) *Picker {
	t.Helper()
	test.NewTempApp(t)
	sel := selector.New(selector.StaticDisplay{Screens: []geom.Rect{
		{X: 0, Y: 0, Width: 1024, Height: 512},
		{X: 1024, Y: 0, Width: 1024, Height: 512},
	}}, selector.Options{})
	p := NewPicker(sel)
	p.Resize(fyne.NewSize(256, 256))
	return p
}

func mouseAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestPickerResizeDrivesSelector(t *testing.T) {
	p := newTestPicker(t)
	if got := p.sel.Size(); got != (geom.Size{Width: 256, Height: 256}) {
		t.Fatalf("expected selector sized 256x256, got %+v", got)
	}
	rects := p.sel.ScreenRects()
	if rects[1] != (geom.Rect{X: 132, Y: 4, Width: 120, Height: 56}) {
		t.Fatalf("unexpected screen 2 rect %+v", rects[1])
	}
}

func TestPickerHoverAndCursor(t *testing.T) {
	p := newTestPicker(t)

	p.MouseIn(mouseAt(245, 10))
	if p.sel.Hovered() != (geom.Position{Screen: 1, Corner: geom.TopRight}) {
		t.Fatalf("unexpected hover %+v", p.sel.Hovered())
	}
	if p.Cursor() != desktop.PointerCursor {
		t.Fatalf("expected pointer cursor over a corner")
	}

	p.MouseMoved(mouseAt(60, 30))
	if p.sel.Hovered() != (geom.Position{Screen: 0, Corner: geom.NoCorner}) {
		t.Fatalf("unexpected hover %+v", p.sel.Hovered())
	}
	if p.Cursor() != desktop.DefaultCursor {
		t.Fatalf("expected default cursor off corners")
	}

	p.MouseOut()
	if p.sel.Hovered() != geom.None {
		t.Fatalf("expected hover cleared, got %+v", p.sel.Hovered())
	}
}

func TestPickerMouseUpCommits(t *testing.T) {
	p := newTestPicker(t)

	secondary := mouseAt(245, 10)
	secondary.Button = desktop.MouseButtonSecondary
	p.MouseUp(secondary)
	if p.sel.Position() != (geom.Position{Screen: 0, Corner: geom.TopLeft}) {
		t.Fatalf("secondary button must not commit, got %+v", p.sel.Position())
	}

	p.MouseUp(mouseAt(245, 10))
	if p.sel.Position() != (geom.Position{Screen: 1, Corner: geom.TopRight}) {
		t.Fatalf("expected commit, got %+v", p.sel.Position())
	}
}

func TestPickerRendererLayersHighlights(t *testing.T) {
	p := newTestPicker(t)
	r := test.WidgetRenderer(p)

	// 2 screens + 8 corners + selected zone + 2 labels.
	if got := len(r.Objects()); got != 13 {
		t.Fatalf("expected 13 objects, got %d", got)
	}

	p.MouseMoved(mouseAt(245, 10))
	objects := r.Objects()
	if got := len(objects); got != 14 {
		t.Fatalf("expected hover highlight to add an object, got %d", got)
	}
	hover, ok := objects[10].(*canvas.LinearGradient)
	if !ok {
		t.Fatalf("expected gradient after corners, got %T", objects[10])
	}
	if hover.Position() != fyne.NewPos(236, 4) || hover.Size() != fyne.NewSize(16, 16) {
		t.Fatalf("unexpected hover geometry %v %v", hover.Position(), hover.Size())
	}
	if _, ok := objects[13].(*canvas.Text); !ok {
		t.Fatalf("expected labels drawn last, got %T", objects[13])
	}
}

func TestPickerMinSizeIsHint(t *testing.T) {
	p := newTestPicker(t)
	if got := p.MinSize(); got != fyne.NewSize(300, 75) {
		t.Fatalf("expected 300x75 min size, got %v", got)
	}
}

func TestWindowStatusAndSave(t *testing.T) {
	test.NewTempApp(t)
	sel := selector.New(selector.StaticDisplay{Screens: []geom.Rect{{Width: 1920, Height: 1080}}}, selector.Options{})

	var saved geom.Position
	w := NewWindowContent(sel, Options{Save: func(p geom.Position) error {
		saved = p
		return nil
	}})
	if w.status.Text != "Selected: Screen 1 top-left" {
		t.Fatalf("unexpected status %q", w.status.Text)
	}

	sel.SetPosition(geom.Position{Screen: 0, Corner: geom.BottomRight})
	test.Tap(w.save)
	if saved != (geom.Position{Screen: 0, Corner: geom.BottomRight}) {
		t.Fatalf("unexpected saved position %+v", saved)
	}
	if w.status.Text != "Saved Screen 1 bottom-right" {
		t.Fatalf("unexpected status %q", w.status.Text)
	}

	w.preview.SetChecked(false)
	if sel.PreviewEnabled() {
		t.Fatalf("expected unchecking to disable preview")
	}
}
