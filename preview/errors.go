package preview

import "github.com/pkg/errors"

var (
	ErrInvalidSize         = errors.New("preview: width and height must be positive")
	ErrUnsupportedChannels = errors.New("preview: only 1, 3 and 4 channel buffers are supported")
	ErrShortBuffer         = errors.New("preview: source buffer too small for the given geometry")
	ErrSizeMismatch        = errors.New("preview: frame size differs from the window size")
	ErrDestroyed           = errors.New("preview: window has been destroyed")
)
