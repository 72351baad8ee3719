package mui

import (
	"image"
	"time"

	"github.com/pkg/errors"
)

// DefaultBackground is the screen clear color.
const DefaultBackground Color = 0x1E2027

// Screen ties a canvas and the pointer state to a backend window.
type Screen struct {
	Canvas *Canvas
	Input  *Input
	Color  Color

	backend Backend
}

// NewScreen creates a w×h screen presented through b and routes the
// backend pointer events into the screen's Input.
func NewScreen(b Backend, w, h int) (*Screen, error) {
	if b == nil {
		return nil, ErrNoBackend
	}
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "screen %dx%d", w, h)
	}
	s := &Screen{
		Canvas:  NewCanvas(w, h),
		Input:   &Input{},
		Color:   DefaultBackground,
		backend: b,
	}
	s.Clear()
	if err := b.SetCallback(s.Input.Handle, nil); err != nil {
		return nil, errors.Wrap(err, "registering the input callback")
	}
	return s, nil
}

// Width returns the canvas width.
func (s *Screen) Width() int { return s.Canvas.Rect.Dx() }

// Height returns the canvas height.
func (s *Screen) Height() int { return s.Canvas.Rect.Dy() }

// Move places the window at x, y.
func (s *Screen) Move(x, y int) error {
	if s.backend == nil {
		return ErrNoBackend
	}
	return s.backend.Move(x, y)
}

// Resize resizes the window and reallocates the canvas. Widgets must be
// redrawn afterwards. On error the screen is left as it was.
func (s *Screen) Resize(w, h int) error {
	if s.backend == nil {
		return ErrNoBackend
	}
	if w <= 0 || h <= 0 {
		return errors.Wrapf(ErrInvalidSize, "screen %dx%d", w, h)
	}
	if w == s.Width() && h == s.Height() {
		return nil
	}
	if err := s.backend.Resize(w, h); err != nil {
		return err
	}
	s.Canvas = NewCanvas(w, h)
	s.Clear()
	return nil
}

// Clear paints the whole canvas with the screen color.
func (s *Screen) Clear() {
	s.Canvas.Fill(s.Color)
}

// ClearRect paints r with the screen color.
func (s *Screen) ClearRect(r image.Rectangle) {
	s.Canvas.SubImage(r).Fill(s.Color)
}

// Show presents the canvas and waits up to timeout for input. It returns
// the key pressed or KeyNone.
func (s *Screen) Show(timeout time.Duration) (int, error) {
	if s.backend == nil {
		return KeyNone, ErrNoBackend
	}
	c := s.Canvas
	return s.backend.Show(c.Pix, c.Rect.Dx(), c.Rect.Dy(), c.Stride, 3, timeout)
}

// Close destroys the backend window.
func (s *Screen) Close() error {
	if s.backend == nil {
		return ErrNoBackend
	}
	err := s.backend.Destroy()
	s.backend = nil
	return err
}
