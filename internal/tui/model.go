package tui

import (
	"fmt"
	"strings"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rows used around the canvas: title above, frame top and bottom, status
// and help below.
const (
	headerLines = 1
	frameLines  = 2
	footerLines = 2
	frameCols   = 2
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type keyMap struct {
	Preview key.Binding
	Save    key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Preview, k.Save, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Preview: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle preview")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload monitors")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// model is the bubbletea model driving a selector from terminal mouse
// events.
type model struct {
	sel     *selector.Selector
	save    func(geom.Position) error
	refresh func() error
	title   string
	width   int
	height  int

	canvasW int
	canvasH int

	keys keyMap
	help help.Model

	message string
	failed  bool
}

func newModel(sel *selector.Selector, opts Options) model {
	title := opts.Title
	if title == "" {
		title = "Popup position"
	}
	return model{
		sel:     sel,
		save:    opts.Save,
		refresh: opts.Refresh,
		title:   title,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Preview):
			m.sel.EnablePreview(!m.sel.PreviewEnabled())
			m.setMessage(fmt.Sprintf("preview %s", onOff(m.sel.PreviewEnabled())), false)
		case key.Matches(msg, m.keys.Save):
			m.savePosition()
		case key.Matches(msg, m.keys.Reload):
			m.reload()
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		m.sel.PointerLeave()
		return m, nil
	}
	return m, nil
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.canvasW = max(width-frameCols, 0)
	m.canvasH = max(height-headerLines-frameLines-footerLines, 0)
	m.sel.Resize(m.canvasW, m.canvasH*cellHeight)
}

// toPreview maps a terminal cell to preview coordinates. ok is false when
// the cell lies outside the canvas.
func (m model) toPreview(x, y int) (geom.Point, bool) {
	col := x - frameCols/2
	row := y - headerLines - frameLines/2
	if col < 0 || row < 0 || col >= m.canvasW || row >= m.canvasH {
		return geom.Point{}, false
	}
	return cellPoint(col, row), true
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	me := tea.MouseEvent(msg)
	if me.IsWheel() {
		return
	}
	p, inside := m.toPreview(me.X, me.Y)
	if !inside {
		m.sel.PointerLeave()
		return
	}

	switch me.Action {
	case tea.MouseActionMotion:
		m.sel.PointerMove(p)
	case tea.MouseActionRelease:
		if m.sel.PointerRelease(p) {
			m.setMessage("selected "+selector.Describe(m.sel.Position()), false)
		}
	case tea.MouseActionPress:
		m.sel.PointerMove(p)
	}
}

func (m *model) savePosition() {
	if m.save == nil {
		m.setMessage("saving is not available", true)
		return
	}
	if err := m.save(m.sel.Position()); err != nil {
		m.setMessage("save failed: "+err.Error(), true)
		return
	}
	m.setMessage("saved "+selector.Describe(m.sel.Position()), false)
}

func (m *model) reload() {
	if m.refresh != nil {
		if err := m.refresh(); err != nil {
			m.setMessage("reload failed: "+err.Error(), true)
			return
		}
	}
	m.sel.Reload()
	m.setMessage(fmt.Sprintf("%d monitors", m.sel.ScreenCount()), false)
}

func (m *model) setMessage(text string, failed bool) {
	m.message = text
	m.failed = failed
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := titleStyle.Width(m.width).Render(m.title)

	canvas := paintScene(m.sel.Scene(), m.canvasW, m.canvasH)
	body := strings.Join(renderCanvas(canvas, m.canvasW), "\n")

	status := fmt.Sprintf("hover: %s  selected: %s  preview: %s",
		selector.Describe(m.sel.Hovered()), selector.Describe(m.sel.Position()), onOff(m.sel.PreviewEnabled()))
	if m.message != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		status += "  " + style.Render(m.message)
	}

	helpLine := helpStyle.Render("click a corner to select  ") + m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		statusStyle.Render(status),
		helpLine,
	)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
