package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Corner identifies one of the four popup anchor zones of a screen.
// The numeric values are also the index into the array returned by CornerRects.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// NoCorner marks the absence of a corner.
const NoCorner Corner = -1

// CornerCount is the number of corner zones per screen.
const CornerCount = 4

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case NoCorner:
		return "none"
	default:
		return "invalid(" + strconv.Itoa(int(c)) + ")"
	}
}

// Valid reports whether c names one of the four corners.
func (c Corner) Valid() bool {
	return c >= TopLeft && c <= BottomRight
}

// ParseCorner accepts either a corner index (0-3) or its name.
func ParseCorner(s string) (Corner, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		c := Corner(n)
		if !c.Valid() {
			return NoCorner, fmt.Errorf("corner index %d out of range 0-3", n)
		}
		return c, nil
	}
	for c := TopLeft; c <= BottomRight; c++ {
		if s == c.String() {
			return c, nil
		}
	}
	switch s {
	case "tl":
		return TopLeft, nil
	case "tr":
		return TopRight, nil
	case "bl":
		return BottomLeft, nil
	case "br":
		return BottomRight, nil
	}
	return NoCorner, fmt.Errorf("unknown corner %q (want 0-3 or top-left, top-right, bottom-left, bottom-right)", s)
}

// Position identifies a screen and one of its corners. Either index is -1
// when nothing is selected; Corner only means something when Screen >= 0.
type Position struct {
	Screen int    `json:"screen" yaml:"screen"`
	Corner Corner `json:"corner" yaml:"corner"`
}

// None is the position of nothing hovered or selected.
var None = Position{Screen: -1, Corner: NoCorner}

// HasScreen reports whether a screen is selected.
func (p Position) HasScreen() bool {
	return p.Screen >= 0
}

// Valid reports whether both a screen and a corner are selected.
func (p Position) Valid() bool {
	return p.Screen >= 0 && p.Corner.Valid()
}

// Normalize maps out-of-range indices to -1. A position whose screen does not
// exist loses its corner as well.
func (p Position) Normalize(screenCount int) Position {
	if p.Screen < 0 || p.Screen >= screenCount {
		return None
	}
	if !p.Corner.Valid() {
		p.Corner = NoCorner
	}
	return p
}

func (p Position) String() string {
	if !p.HasScreen() {
		return "none"
	}
	return fmt.Sprintf("screen %d %s", p.Screen, p.Corner)
}
