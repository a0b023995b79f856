package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

var (
	screenFill   = color.White
	screenStroke = color.Black
	cornerFill   = color.NRGBA{R: 188, G: 188, B: 188, A: 255}
	hoverStart   = color.NRGBA{R: 204, G: 204, B: 204, A: 255}
	hoverEnd     = color.NRGBA{R: 219, G: 219, B: 219, A: 255}
	selectStart  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	selectEnd    = color.NRGBA{R: 252, G: 224, B: 185, A: 255}
)

// Diagonal from the top-left to the bottom-right of a zone.
const gradientAngle = 315

// Picker is a Fyne widget showing the monitors in miniature. Hovering a
// corner highlights it and clicking commits it.
type Picker struct {
	widget.BaseWidget

	sel  *selector.Selector
	size geom.Size
}

var (
	_ desktop.Hoverable  = (*Picker)(nil)
	_ desktop.Mouseable  = (*Picker)(nil)
	_ desktop.Cursorable = (*Picker)(nil)
)

// NewPicker creates a picker widget for sel.
func NewPicker(sel *selector.Selector) *Picker {
	p := &Picker{sel: sel, size: sel.Size()}
	p.ExtendBaseWidget(p)
	sel.OnInvalidate(p.Refresh)
	return p
}

// Selector returns the selector driven by the widget.
func (p *Picker) Selector() *selector.Selector {
	return p.sel
}

// CreateRenderer is a standard Fyne method
func (p *Picker) CreateRenderer() fyne.WidgetRenderer {
	r := &pickerRenderer{picker: p}
	r.rebuild()
	return r
}

// MouseIn implements desktop.Hoverable.
func (p *Picker) MouseIn(e *desktop.MouseEvent) {
	p.sel.PointerMove(toPoint(e.Position))
}

// MouseMoved implements desktop.Hoverable.
func (p *Picker) MouseMoved(e *desktop.MouseEvent) {
	p.sel.PointerMove(toPoint(e.Position))
}

// MouseOut implements desktop.Hoverable.
func (p *Picker) MouseOut() {
	p.sel.PointerLeave()
}

// MouseDown implements desktop.Mouseable.
func (p *Picker) MouseDown(*desktop.MouseEvent) {}

// MouseUp commits the corner under the pointer.
func (p *Picker) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.sel.PointerRelease(toPoint(e.Position))
}

// Cursor implements desktop.Cursorable.
func (p *Picker) Cursor() desktop.Cursor {
	if p.sel.Cursor() == selector.CursorPointer {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

func (p *Picker) resizeSelector(size fyne.Size) {
	s := geom.Size{Width: int(size.Width), Height: int(size.Height)}
	if s == p.size {
		return
	}
	p.size = s
	p.sel.Resize(s.Width, s.Height)
}

func toPoint(pos fyne.Position) geom.Point {
	return geom.Point{X: int(pos.X), Y: int(pos.Y)}
}

func toPos(r geom.Rect) fyne.Position {
	return fyne.NewPos(float32(r.X), float32(r.Y))
}

func toSize(r geom.Rect) fyne.Size {
	return fyne.NewSize(float32(r.Width), float32(r.Height))
}

// --- Renderer ---

type pickerRenderer struct {
	picker  *Picker
	objects []fyne.CanvasObject
}

func (r *pickerRenderer) Layout(size fyne.Size) {
	r.picker.resizeSelector(size)
	r.rebuild()
}

func (r *pickerRenderer) MinSize() fyne.Size {
	hint := r.picker.sel.SizeHint()
	return fyne.NewSize(float32(hint.Width), float32(hint.Height))
}

func (r *pickerRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.picker)
}

func (r *pickerRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *pickerRenderer) Destroy() {}

// rebuild recreates the canvas objects from the selector scene: screens
// with their corners, then the hover highlight, then the selected corner,
// then the labels.
func (r *pickerRenderer) rebuild() {
	sc := r.picker.sel.Scene()
	objects := make([]fyne.CanvasObject, 0, len(sc.Screens)*6+2)

	for _, s := range sc.Screens {
		screen := canvas.NewRectangle(screenFill)
		screen.StrokeColor = screenStroke
		screen.StrokeWidth = 1
		place(screen, s.Rect)
		objects = append(objects, screen)

		for _, zone := range s.Corners {
			corner := canvas.NewRectangle(cornerFill)
			corner.StrokeColor = screenStroke
			corner.StrokeWidth = 1
			place(corner, zone)
			objects = append(objects, corner)
		}
	}

	if sc.HoverVisible {
		hover := canvas.NewLinearGradient(hoverStart, hoverEnd, gradientAngle)
		place(hover, sc.HoverZone)
		objects = append(objects, hover)
	}
	if sc.SelectedVisible {
		selected := canvas.NewLinearGradient(selectStart, selectEnd, gradientAngle)
		place(selected, sc.SelectedZone)
		objects = append(objects, selected)
	}

	for _, s := range sc.Screens {
		label := canvas.NewText(s.Label, screenStroke)
		label.Alignment = fyne.TextAlignCenter
		ts := label.MinSize()
		label.Move(fyne.NewPos(
			float32(s.Rect.X)+(float32(s.Rect.Width)-ts.Width)/2,
			float32(s.Rect.Y)+(float32(s.Rect.Height)-ts.Height)/2,
		))
		label.Resize(ts)
		objects = append(objects, label)
	}

	r.objects = objects
}

func place(o fyne.CanvasObject, rect geom.Rect) {
	o.Move(toPos(rect))
	o.Resize(toSize(rect))
}
