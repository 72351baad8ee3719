package mui

import (
	"fmt"
	"image"

	"github.com/esimov/mui/utils"
)

// BoxStyle is the look shared by check boxes, radio boxes and range boxes.
type BoxStyle struct {
	Color     Color
	Disabled  Color
	Outer     Color
	Inner     Color
	OuterSize int
	Font      Font
	Align     Align
}

// DefaultBoxStyle returns the blue-on-dark style of the box widgets.
func DefaultBoxStyle() BoxStyle {
	c := Color(0x1E2027)
	return BoxStyle{
		Color:     c,
		Disabled:  c.Add(-0x7),
		Outer:     0x43454C,
		Inner:     0x2670AF,
		OuterSize: 1,
		Font:      DefaultFont(),
		Align:     AlignLeft,
	}
}

func (st *BoxStyle) outer(disabled bool) Color {
	if disabled {
		return st.Disabled
	}
	return st.Outer
}

func (st *BoxStyle) inner(disabled bool) Color {
	if disabled {
		return st.Disabled
	}
	return st.Inner
}

// boxLayout is the geometry of a check or radio box inside roi.
type boxLayout struct {
	box  int
	mark image.Rectangle
	fill image.Rectangle
	text image.Rectangle
}

func (st *BoxStyle) layout(roi image.Rectangle) boxLayout {
	pad := 1 + st.OuterSize
	box := utils.Min(roi.Dx(), roi.Dy()) - 2*pad
	mark := Rect(roi.Min.X+pad, roi.Min.Y+pad, box, box)
	return boxLayout{
		box:  box,
		mark: mark,
		fill: mark.Inset(3),
		text: Rect(mark.Max.X+3, mark.Min.Y, roi.Dx()-box-4, box),
	}
}

// CheckBox is a square toggle with a caption.
type CheckBox struct {
	state
	Style BoxStyle
}

// NewCheckBox returns a check box with the default style.
func NewCheckBox() *CheckBox {
	return &CheckBox{state: newState(), Style: DefaultBoxStyle()}
}

// Draw flips *checked when the box is clicked and repaints it when its
// status changed. Changing *checked elsewhere needs a Redraw to show.
func (c *CheckBox) Draw(s *Screen, text string, checked *bool, x, y, w, h int) Status {
	roi := Rect(x, y, w, h)
	if !c.update(c.effective(s.Input, roi, Idle|Clicked, Idle)) {
		return c.status
	}
	if c.status == Clicked {
		*checked = !*checked
	}
	disabled := c.status == Disabled
	l := c.Style.layout(roi)

	area := s.Canvas.Region(roi)
	area.Fill(c.Style.Color)
	strokeRect(area, l.mark, c.Style.outer(disabled), c.Style.OuterSize)
	if *checked {
		fillRect(area, l.fill, c.Style.inner(disabled))
	}
	c.Style.Font.Draw(area, l.text, text, disabled, c.Style.Align)
	return c.status
}

// RadioBox is one option of a group sharing a selected id.
type RadioBox struct {
	state
	Style BoxStyle

	checked bool
}

// NewRadioBox returns a radio box with the default style.
func NewRadioBox() *RadioBox {
	return &RadioBox{state: newState(), Style: DefaultBoxStyle()}
}

// Checked reports whether the box showed as selected on its last draw.
func (r *RadioBox) Checked() bool { return r.checked }

// Draw selects id when the box is clicked. It repaints when its status
// changed or when the selection moved to or away from it.
func (r *RadioBox) Draw(s *Screen, text string, id int, selected *int, x, y, w, h int) Status {
	roi := Rect(x, y, w, h)
	st := r.effective(s.Input, roi, Idle|Clicked, Idle)
	if st == Clicked {
		*selected = id
	}
	checked := *selected == id
	if st == r.status && checked == r.checked {
		return r.status
	}
	r.status, r.checked = st, checked
	disabled := st == Disabled
	l := r.Style.layout(roi)
	center := image.Pt(roi.Min.X+(1+r.Style.OuterSize+l.box)/2, roi.Min.Y+(1+r.Style.OuterSize+l.box)/2)
	radius := l.box/2 - 1

	area := s.Canvas.Region(roi)
	area.Fill(r.Style.Color)
	strokeCircle(area, center, radius, r.Style.outer(disabled), r.Style.OuterSize)
	if checked {
		fillCircle(area, center, radius-3, r.Style.inner(disabled))
	}
	r.Style.Font.Draw(area, l.text, text, disabled, r.Style.Align)
	return r.status
}

// RangeBox is a bar showing a value that grows while the box is held.
type RangeBox struct {
	state
	Style BoxStyle
}

// NewRangeBox returns a range box with the default style and centered text.
func NewRangeBox() *RangeBox {
	st := DefaultBoxStyle()
	st.Align = AlignCenter
	return &RangeBox{state: newState(), Style: st}
}

// Draw adds step to *val on every frame the box is pressed. A value below
// min is raised to min; a value past max starts over at min.
func (b *RangeBox) Draw(s *Screen, val *float64, min, max, step float64, x, y, w, h int) Status {
	roi := Rect(x, y, w, h)
	st := b.effective(s.Input, roi, Idle|Pressed, Idle)
	changed := false
	if st == Pressed {
		*val += step
		switch {
		case *val < min:
			*val = min
		case *val > max:
			*val = min
		}
		changed = true
	}
	if !b.update(st) && !changed {
		return b.status
	}

	pad := 1 + b.Style.OuterSize
	outer := Rect(roi.Min.X+pad, roi.Min.Y+pad, w-2*pad, h-2*pad)
	inner := outer.Inset(3)
	var percent float64
	if max > min {
		percent = (*val - min) / (max - min)
	}
	bar := inner
	bar.Max.X = inner.Min.X + int(float64(inner.Dx())*percent)

	area := s.Canvas.Region(roi)
	area.Fill(b.Style.Color)
	strokeRect(area, outer, b.Style.outer(b.disabled), b.Style.OuterSize)
	fillRect(area, bar, b.Style.inner(b.disabled))
	b.Style.Font.Draw(area, inner, fmt.Sprintf("%0.2f", *val), st == Disabled, b.Style.Align)
	return b.status
}
