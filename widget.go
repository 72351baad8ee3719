package mui

import "image"

// Widget is the part every widget shares: its last drawn status and a
// disabled flag.
type Widget interface {
	Status() Status
	Disable(bool)
	Redraw()
	Reset()
}

// state implements Widget and the repaint decision of the widgets that
// embed it.
type state struct {
	status   Status
	disabled bool
}

func newState() state { return state{status: Init} }

// Status returns the status of the last drawn frame.
func (s *state) Status() Status { return s.status }

// Disable turns hit-testing off; a disabled widget reports Disabled.
func (s *state) Disable(v bool) { s.disabled = v }

// Redraw forces a repaint on the next draw call.
func (s *state) Redraw() { s.status = Changed }

// Reset brings the widget back to its initial, enabled state.
func (s *state) Reset() {
	s.status = Init
	s.disabled = false
}

// effective is the status the widget should show for the current input.
func (s *state) effective(in *Input, roi image.Rectangle, mask, fallback Status) Status {
	if s.disabled {
		return Disabled
	}
	return in.Status(roi, mask, fallback)
}

// update stores st and reports whether it differs from the last status.
func (s *state) update(st Status) bool {
	if st == s.status {
		return false
	}
	s.status = st
	return true
}

// Palette holds the background of a widget for each status.
type Palette struct {
	Idle, Hovered, Pressed, Clicked, Disabled Color
}

// Of returns the color for status st.
func (p Palette) Of(st Status) Color {
	switch st {
	case Disabled:
		return p.Disabled
	case Hovered:
		return p.Hovered
	case Pressed:
		return p.Pressed
	case Clicked:
		return p.Clicked
	}
	return p.Idle
}

// Flat returns a palette using c for every enabled status.
func Flat(c, disabled Color) Palette {
	return Palette{Idle: c, Hovered: c, Pressed: c, Clicked: c, Disabled: disabled}
}
