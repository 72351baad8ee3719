package sui

import "github.com/pkg/errors"

// Resource errors: the display or the memory the window needs is not available.
var (
	ErrConnect           = errors.New("sui: cannot open display connection")
	ErrUnsupportedVisual = errors.New("sui: default visual is not 24 bit true-color")
	ErrAlloc             = errors.New("sui: cannot allocate image buffer")
)

// Invalid argument errors.
var (
	ErrInvalidSize         = errors.New("sui: width and height must be positive")
	ErrUnsupportedChannels = errors.New("sui: only 1, 3 and 4 channel buffers are supported")
	ErrShortBuffer         = errors.New("sui: source buffer too small for the given geometry")
)

// Precondition errors.
var (
	ErrDestroyed    = errors.New("sui: window has been destroyed")
	ErrSizeMismatch = errors.New("sui: frame size differs from the window size")
)
