package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

// Options configures the desktop picker window.
type Options struct {
	Title string
	// Save persists the committed position when the user presses Save.
	Save func(geom.Position) error
}

// Window bundles the picker with its preview toggle and status line.
type Window struct {
	picker  *Picker
	preview *widget.Check
	status  *widget.Label
	save    *widget.Button
	opts    Options
}

// NewWindowContent builds the picker content without creating a window.
func NewWindowContent(sel *selector.Selector, opts Options) *Window {
	w := &Window{
		picker: NewPicker(sel),
		status: widget.NewLabel(""),
		opts:   opts,
	}
	w.preview = widget.NewCheck("Show preview on screen", func(on bool) {
		sel.EnablePreview(on)
	})
	w.preview.SetChecked(sel.PreviewEnabled())
	w.save = widget.NewButton("Save", w.onSave)
	if opts.Save == nil {
		w.save.Disable()
	}

	sel.OnCornerHovered(func(geom.Position) { w.updateStatus() })
	sel.OnPositionChanged(func(geom.Position) { w.updateStatus() })
	w.updateStatus()
	return w
}

// Content returns the root canvas object.
func (w *Window) Content() fyne.CanvasObject {
	bottom := container.NewBorder(nil, nil, w.preview, w.save, w.status)
	return container.NewBorder(nil, bottom, nil, nil, w.picker)
}

func (w *Window) onSave() {
	if w.opts.Save == nil {
		return
	}
	pos := w.picker.sel.Position()
	if err := w.opts.Save(pos); err != nil {
		w.status.SetText("Save failed: " + err.Error())
		return
	}
	w.status.SetText("Saved " + selector.Describe(pos))
}

func (w *Window) updateStatus() {
	sel := w.picker.sel
	text := "Selected: " + selector.Describe(sel.Position())
	if h := sel.Hovered(); h.Valid() && h != sel.Position() {
		text += "   Hover: " + selector.Describe(h)
	}
	w.status.SetText(text)
}

// Run opens the picker window and blocks until it is closed. It returns
// the committed position.
func Run(sel *selector.Selector, opts Options) geom.Position {
	title := opts.Title
	if title == "" {
		title = "Popup position"
	}

	a := app.New()
	win := a.NewWindow(title)
	content := NewWindowContent(sel, opts)
	win.SetContent(content.Content())

	hint := sel.SizeHint()
	win.Resize(fyne.NewSize(float32(hint.Width)+16, float32(hint.Height)+64))
	win.SetOnClosed(sel.PointerLeave)
	win.ShowAndRun()

	return sel.Position()
}
