package palette

import (
	"fmt"

	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

var cornerAliases = [geom.CornerCount]string{"tl", "tr", "bl", "br"}

// PositionItems lists every screen and corner of sel, in screen order, with
// the committed position marked active.
func PositionItems(sel *selector.Selector) ([]Item, []geom.Position) {
	monitors := sel.Monitors()
	items := make([]Item, 0, len(monitors)*geom.CornerCount)
	positions := make([]geom.Position, 0, cap(items))
	current := sel.Position()

	for screen, m := range monitors {
		for c := geom.TopLeft; c <= geom.BottomRight; c++ {
			p := geom.Position{Screen: screen, Corner: c}
			items = append(items, Item{
				Label:  fmt.Sprintf("%s %s  (%dx%d+%d+%d)", selector.ScreenLabel(screen), c, m.Width, m.Height, m.X, m.Y),
				Meta:   fmt.Sprintf("%d %s", screen+1, cornerAliases[c]),
				Active: p == current,
			})
			positions = append(positions, p)
		}
	}
	return items, positions
}

// Choose asks b for a position and commits the choice to sel.
func Choose(b Backend, sel *selector.Selector) (geom.Position, error) {
	items, positions := PositionItems(sel)
	if len(items) == 0 {
		return geom.None, fmt.Errorf("palette: no screens to choose from")
	}

	idx, err := b.Show("popup position", items, "Selected: "+sel.Position().String())
	if err != nil {
		return geom.None, err
	}
	if idx < 0 || idx >= len(positions) {
		return geom.None, fmt.Errorf("palette: index %d out of range", idx)
	}

	sel.SetPosition(positions[idx])
	return sel.Position(), nil
}
