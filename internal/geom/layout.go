package geom

const (
	// CornerFactor is the side of a corner zone relative to the shorter side
	// of its screen.
	CornerFactor = 0.3

	// PreviewMargin is the inset in preview pixels applied to every scaled
	// screen so neighbouring monitors never touch.
	PreviewMargin = 4

	// PreviewHintExtent bounds both sides of the preferred preview size.
	PreviewHintExtent = 300
)

// TotalBounds returns the smallest rectangle enclosing every monitor.
// An empty slice yields the zero Rect.
func TotalBounds(monitors []Rect) Rect {
	if len(monitors) == 0 {
		return Rect{}
	}

	x1, y1 := monitors[0].X, monitors[0].Y
	x2, y2 := monitors[0].Right(), monitors[0].Bottom()
	for _, m := range monitors[1:] {
		x1 = min(x1, m.X)
		y1 = min(y1, m.Y)
		x2 = max(x2, m.Right())
		y2 = max(y2, m.Bottom())
	}

	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// ScaleKeepAspect scales size to the largest size that fits inside target
// while keeping its aspect ratio. Integer division truncates.
func ScaleKeepAspect(size, target Size) Size {
	if size.Width <= 0 || size.Height <= 0 || target.Width <= 0 || target.Height <= 0 {
		return Size{}
	}

	rw := int64(target.Height) * int64(size.Width) / int64(size.Height)
	if rw <= int64(target.Width) {
		return Size{Width: int(rw), Height: target.Height}
	}
	rh := int64(target.Width) * int64(size.Height) / int64(size.Width)
	return Size{Width: target.Width, Height: int(rh)}
}

// ScaledLayout maps monitors into a preview area of targetWidth x
// targetHeight. The total bounds are fitted into the area with a locked
// aspect ratio; the per-axis ratios come from that fit and are applied
// independently. Every rectangle is then inset by margin on each side.
func ScaledLayout(monitors []Rect, total Rect, targetWidth, targetHeight, margin int) []Rect {
	out := make([]Rect, len(monitors))
	if total.Empty() {
		return out
	}

	fit := ScaleKeepAspect(total.Size(), Size{Width: targetWidth, Height: targetHeight})
	if fit.Width <= 0 || fit.Height <= 0 {
		return out
	}

	ratioX := float64(fit.Width) / float64(total.Width)
	ratioY := float64(fit.Height) / float64(total.Height)
	m := float64(margin)

	for i, mon := range monitors {
		r := Rect{
			X:      int(float64(mon.X)*ratioX - float64(total.X)*ratioX + m),
			Y:      int(float64(mon.Y)*ratioY - float64(total.Y)*ratioY + m),
			Width:  int(float64(mon.Width)*ratioX - 2*m),
			Height: int(float64(mon.Height)*ratioY - 2*m),
		}
		if r.Width < 0 {
			r.Width = 0
		}
		if r.Height < 0 {
			r.Height = 0
		}
		out[i] = r
	}

	return out
}

// CornerRects returns the four corner zones of r in the order top-left,
// top-right, bottom-left, bottom-right. Each zone is a square whose side is
// CornerFactor of r's shorter side. On very small or elongated rectangles the
// zones may overlap each other.
func CornerRects(r Rect) [CornerCount]Rect {
	size := int(float64(min(r.Width, r.Height)) * CornerFactor)
	if size < 0 {
		size = 0
	}

	return [CornerCount]Rect{
		TopLeft:     {X: r.X, Y: r.Y, Width: size, Height: size},
		TopRight:    {X: r.Right() - size, Y: r.Y, Width: size, Height: size},
		BottomLeft:  {X: r.X, Y: r.Bottom() - size, Width: size, Height: size},
		BottomRight: {X: r.Right() - size, Y: r.Bottom() - size, Width: size, Height: size},
	}
}

// LayoutCorners computes the corner zones of every screen.
func LayoutCorners(screens []Rect) [][CornerCount]Rect {
	out := make([][CornerCount]Rect, len(screens))
	for i, s := range screens {
		out[i] = CornerRects(s)
	}
	return out
}

// HitTest finds the screen and corner under p. Screens are scanned in index
// order and the first match wins; within it the corners are scanned in
// CornerRects order. A point over no screen yields None, a point over a
// screen but outside its corners yields {screen, NoCorner}.
func HitTest(p Point, screens []Rect, corners [][CornerCount]Rect) Position {
	for i, s := range screens {
		if !s.Contains(p) {
			continue
		}
		pos := Position{Screen: i, Corner: NoCorner}
		if i < len(corners) {
			for c, zone := range corners[i] {
				if zone.Contains(p) {
					pos.Corner = Corner(c)
					break
				}
			}
		}
		return pos
	}
	return None
}

// PreviewSizeHint returns the preferred preview size for the given total
// bounds: the bounds scaled to fit a PreviewHintExtent square.
func PreviewSizeHint(total Rect) Size {
	return ScaleKeepAspect(total.Size(), Size{Width: PreviewHintExtent, Height: PreviewHintExtent})
}
