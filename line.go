package mui

import "image"

// Line is a static segment. It is painted once and again only when it is
// disabled, enabled or asked to redraw.
type Line struct {
	state
	Color         Color
	DisabledColor Color
}

// NewLine returns a line in the button color.
func NewLine() *Line {
	return &Line{state: newState(), Color: 0x33353C, DisabledColor: 0x303030}
}

// Draw paints the segment from x0, y0 to x1, y1.
func (l *Line) Draw(s *Screen, thickness, x0, y0, x1, y1 int) Status {
	st := Idle
	if l.disabled {
		st = Disabled
	}
	if !l.update(st) {
		return l.status
	}
	a, b := image.Pt(x0, y0), image.Pt(x1, y1)
	bounds := image.Rectangle{Min: a, Max: b}.Canon().Inset(-thickness - 1)
	c := l.Color
	if st == Disabled {
		c = l.DisabledColor
	}
	drawLine(s.Canvas.Region(bounds), a, b, c, thickness)
	return l.status
}
