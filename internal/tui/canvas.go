package tui

import (
	"strings"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
	"github.com/charmbracelet/lipgloss"
)

// A terminal cell is about twice as tall as it is wide, so one cell covers
// one preview unit horizontally and two vertically.
const cellHeight = 2

type cellKind int

const (
	cellEmpty cellKind = iota
	cellScreen
	cellCorner
	cellHover
	cellSelected
)

var kindRunes = map[cellKind]rune{
	cellEmpty:    ' ',
	cellScreen:   ' ',
	cellCorner:   '░',
	cellHover:    '▒',
	cellSelected: '█',
}

var (
	screenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("255"))

	cornerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("255"))

	hoverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Background(lipgloss.Color("255"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("25")).
			Background(lipgloss.Color("255"))

	frameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellScreen:
		return screenStyle
	case cellCorner:
		return cornerStyle
	case cellHover:
		return hoverStyle
	case cellSelected:
		return selectedStyle
	default:
		return lipgloss.NewStyle()
	}
}

type cell struct {
	r    rune
	kind cellKind
}

// cellRect is the preview area covered by cell (col, row).
func cellRect(col, row int) geom.Rect {
	return geom.Rect{X: col, Y: row * cellHeight, Width: 1, Height: cellHeight}
}

// cellPoint is the preview point used to hit-test cell (col, row).
func cellPoint(col, row int) geom.Point {
	return geom.Point{X: col, Y: row * cellHeight}
}

// paintScene rasterizes sc into a width x height cell grid. Screens and
// their corner zones come first, then the hover zone, then the selected
// zone, then the screen labels.
func paintScene(sc selector.Scene, width, height int) [][]cell {
	canvas := make([][]cell, height)
	for i := range canvas {
		canvas[i] = make([]cell, width)
		for j := range canvas[i] {
			canvas[i][j] = cell{r: ' ', kind: cellEmpty}
		}
	}

	for _, s := range sc.Screens {
		fillRect(canvas, s.Rect, cellScreen)
		for _, zone := range s.Corners {
			fillRect(canvas, zone, cellCorner)
		}
	}
	if sc.HoverVisible {
		fillRect(canvas, sc.HoverZone, cellHover)
	}
	if sc.SelectedVisible {
		fillRect(canvas, sc.SelectedZone, cellSelected)
	}
	for _, s := range sc.Screens {
		drawLabel(canvas, s.Rect, s.Label)
	}
	return canvas
}

func fillRect(canvas [][]cell, r geom.Rect, kind cellKind) {
	if r.Empty() {
		return
	}
	for row := r.Y / cellHeight; row <= (r.Bottom()-1)/cellHeight; row++ {
		if row < 0 || row >= len(canvas) {
			continue
		}
		for col := r.X; col < r.Right(); col++ {
			if col < 0 || col >= len(canvas[row]) {
				continue
			}
			if !r.Intersects(cellRect(col, row)) {
				continue
			}
			canvas[row][col] = cell{r: kindRunes[kind], kind: kind}
		}
	}
}

// drawLabel centers label inside r, truncating it to the screen width.
func drawLabel(canvas [][]cell, r geom.Rect, label string) {
	if r.Empty() {
		return
	}
	row := (r.Y + r.Height/2) / cellHeight
	if row < 0 || row >= len(canvas) {
		return
	}
	runes := []rune(label)
	if len(runes) > r.Width {
		runes = runes[:r.Width]
	}
	start := r.X + (r.Width-len(runes))/2
	for i, ch := range runes {
		col := start + i
		if col < 0 || col >= len(canvas[row]) {
			continue
		}
		canvas[row][col].r = ch
	}
}

// renderCanvas converts the cell grid into styled lines framed by a double
// border.
func renderCanvas(canvas [][]cell, width int) []string {
	lines := make([]string, 0, len(canvas)+2)
	lines = append(lines, frameStyle.Render("╔"+strings.Repeat("═", width)+"╗"))
	for _, row := range canvas {
		var sb strings.Builder
		sb.WriteString(frameStyle.Render("║"))
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].kind == row[start].kind {
				continue
			}
			run := make([]rune, 0, i-start)
			for _, c := range row[start:i] {
				run = append(run, c.r)
			}
			sb.WriteString(styleFor(row[start].kind).Render(string(run)))
			start = i
		}
		sb.WriteString(frameStyle.Render("║"))
		lines = append(lines, sb.String())
	}
	lines = append(lines, frameStyle.Render("╚"+strings.Repeat("═", width)+"╝"))
	return lines
}
