package mui

import (
	"time"

	"github.com/pkg/errors"
)

// Key codes returned by Screen.Show.
const (
	KeyNone      = -1
	KeyBackspace = 8
	KeyEnter     = 13
	KeyEscape    = 27
)

// DefaultTimeout is how long Show waits for input by default.
const DefaultTimeout = 20 * time.Millisecond

var (
	// ErrNoBackend is returned when a Screen is used without a backend.
	ErrNoBackend = errors.New("mui: screen has no backend")
	// ErrInvalidSize is returned for a screen width or height below one.
	ErrInvalidSize = errors.New("mui: width and height must be positive")
)

// Callback receives pointer events from a backend.
type Callback = func(event, x, y, flag int, data any)

// Backend presents frames in a window and reports input. Show blits the
// frame, dispatches pointer events to the callback for up to timeout and
// returns the first key pressed, or KeyNone.
type Backend interface {
	Move(x, y int) error
	Resize(w, h int) error
	SetCallback(cb Callback, data any) error
	Show(pix []uint8, w, h, stride, channels int, timeout time.Duration) (int, error)
	Destroy() error
}
