package mui

// Button is a push button with a text caption.
type Button struct {
	state
	Palette Palette
	Font    Font
	Align   Align

	mask Status
}

// NewButton returns a button with the default dark palette.
func NewButton() *Button {
	c := Color(0x33353C)
	return &Button{
		state: newState(),
		Palette: Palette{
			Idle:     c,
			Hovered:  0x43454C,
			Pressed:  0x31313F,
			Clicked:  0x43454C,
			Disabled: c.Add(-0x13),
		},
		Font:  DefaultFont(),
		Align: AlignCenter,
		mask:  AllStatus,
	}
}

// NewLabel returns a button that only reports Idle and Clicked and looks
// the same whatever the pointer does.
func NewLabel() *Button {
	b := NewButton()
	b.Palette = Flat(b.Palette.Idle, b.Palette.Disabled)
	b.mask = Idle | Clicked
	return b
}

// Draw paints the button at x, y when its status changed and returns the
// status.
func (b *Button) Draw(s *Screen, text string, x, y, w, h int) Status {
	roi := Rect(x, y, w, h)
	if !b.update(b.effective(s.Input, roi, b.mask, Idle)) {
		return b.status
	}
	area := s.Canvas.Region(roi)
	area.Fill(b.Palette.Of(b.status))
	b.Font.Draw(area, roi, text, b.status == Disabled, b.Align)
	return b.status
}
