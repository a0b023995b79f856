package tui

import (
	"fmt"
	"os"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Options configures the terminal picker.
type Options struct {
	Title string
	// Save persists the committed position when the user presses s.
	Save func(geom.Position) error
	// Refresh re-reads the monitor configuration when the user presses r.
	Refresh func() error
}

// Run shows the picker for sel until the user quits and returns the
// committed position.
func Run(sel *selector.Selector, opts Options) (geom.Position, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return geom.None, fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(sel, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return geom.None, fmt.Errorf("tui: %w", err)
	}

	// Leaving the picker must not leave the real-screen indicator behind.
	sel.PointerLeave()
	return sel.Position(), nil
}
