package mui

import "image"

// Pointer event codes delivered to Input.Handle.
const (
	EventMouseMove = iota
	EventLButtonDown
	EventRButtonDown
	EventMButtonDown
	EventLButtonUp
	EventRButtonUp
	EventMButtonUp
)

// Pointer button flags delivered to Input.Handle.
const (
	FlagLButton = 1
	FlagRButton = 2
	FlagMButton = 4
)

// Input tracks the pointer. It is written by the backend callback and read
// by widget hit-testing.
type Input struct {
	X, Y int
	Held bool
	// JustReleased is set by a left button release and consumed by the
	// first hit-test that sees it over its rectangle.
	JustReleased bool
}

// Handle is the backend callback updating the pointer state.
func (in *Input) Handle(event, x, y, flag int, data any) {
	in.X, in.Y = x, y
	in.JustReleased = false
	switch event {
	case EventLButtonDown:
		in.Held = true
	case EventLButtonUp:
		in.Held = false
		in.JustReleased = true
	}
}

// Inside reports whether the pointer lies within r, edges included on
// all four sides.
func (in *Input) Inside(r image.Rectangle) bool {
	return in.X >= r.Min.X && in.X <= r.Max.X &&
		in.Y >= r.Min.Y && in.Y <= r.Max.Y
}

// Status classifies the pointer against r. A pending release inside r is
// consumed and reported as Clicked. The result is filtered by mask and
// fallback is returned when nothing is left.
func (in *Input) Status(r image.Rectangle, mask, fallback Status) Status {
	s := Idle
	if in.Inside(r) {
		switch {
		case in.JustReleased:
			in.JustReleased = false
			s = Clicked
		case in.Held:
			s = Pressed
		default:
			s = Hovered
		}
	}
	if s &= mask; s == 0 {
		return fallback
	}
	return s
}
