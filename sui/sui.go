package sui

import (
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

// Mode selects how the window is presented.
type Mode int

const (
	Windowed Mode = iota
	Fullscreen
)

// Key codes returned by Show and Wait.
const (
	KeyNone      = -1
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyEscape    = 27
	KeyDelete    = 127
)

// Pointer event codes passed to the callback.
const (
	EventMouseMove = iota
	EventLButtonDown
	EventRButtonDown
	EventMButtonDown
	EventLButtonUp
	EventRButtonUp
	EventMButtonUp
)

// Button flags passed to the callback.
const (
	FlagLButton = 1
	FlagRButton = 2
	FlagMButton = 4
)

const (
	backgroundFill = 0x2C
	pollInterval   = 2 * time.Millisecond
)

// Callback receives pointer events while the window waits for input.
type Callback = func(event, x, y, flag int, data any)

func noopCallback(int, int, int, int, any) {}

type options struct {
	display string
	logger  *slog.Logger
	dial    dialer
}

// Option customizes Create.
type Option func(*options)

// WithDisplay connects to the named X display instead of $DISPLAY.
func WithDisplay(name string) Option {
	return func(o *options) { o.display = name }
}

// WithLogger sets the logger used for protocol diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func withDialer(d dialer) Option {
	return func(o *options) { o.dial = d }
}

// Sui is a single native window showing a frame buffer and reporting
// pointer and keyboard input. It must be used from one goroutine.
type Sui struct {
	srv  server
	log  *slog.Logger
	mode Mode
	w, h int
	img  *Image

	cb   Callback
	data any

	destroyed bool
}

// Create opens the display, creates a w×h window and maps it.
func Create(w, h int, mode Mode, opts ...Option) (*Sui, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.dial == nil {
		o.dial = dialX(o.logger)
	}

	img, err := NewImage(w, h)
	if err != nil {
		return nil, err
	}
	img.Fill(backgroundFill, backgroundFill, backgroundFill)

	srv, err := o.dial(o.display)
	if err != nil {
		return nil, err
	}
	if !srv.TrueColor() {
		srv.Close()
		return nil, ErrUnsupportedVisual
	}
	if err := srv.CreateWindow(w, h, mode == Fullscreen); err != nil {
		if derr := srv.DestroyWindow(); derr != nil {
			o.logger.Debug("cleanup after failed create", "err", derr)
		}
		srv.Close()
		return nil, err
	}
	o.logger.Debug("window created", "width", w, "height", h, "mode", mode)

	return &Sui{
		srv:  srv,
		log:  o.logger,
		mode: mode,
		w:    w,
		h:    h,
		img:  img,
		cb:   noopCallback,
	}, nil
}

// Size returns the current window size.
func (s *Sui) Size() (int, int) {
	return s.w, s.h
}

// Move places the window at x, y. It does nothing in fullscreen mode.
func (s *Sui) Move(x, y int) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if s.mode == Fullscreen {
		return nil
	}
	return s.srv.MoveWindow(x, y)
}

// Resize changes the window size. The previous window state is kept when
// the new buffer cannot be allocated or the server rejects the request.
func (s *Sui) Resize(w, h int) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if w == s.w && h == s.h {
		return nil
	}
	img, err := NewImage(w, h)
	if err != nil {
		return err
	}
	img.Fill(backgroundFill, backgroundFill, backgroundFill)
	if err := s.srv.ResizeWindow(w, h); err != nil {
		return err
	}
	s.img = img
	s.w, s.h = w, h
	return nil
}

// SetCallback installs the pointer callback. A nil cb restores the
// callback that ignores every event.
func (s *Sui) SetCallback(cb Callback, data any) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if cb == nil {
		cb = noopCallback
	}
	s.cb = cb
	s.data = data
	return nil
}

// Show converts the frame into the window buffer, repaints the window
// and waits for input for up to timeout.
func (s *Sui) Show(pix []uint8, w, h, stride, channels int, timeout time.Duration) (int, error) {
	if s.destroyed {
		return KeyNone, ErrDestroyed
	}
	if w != s.w || h != s.h {
		return KeyNone, errors.Wrapf(ErrSizeMismatch, "frame %dx%d, window %dx%d", w, h, s.w, s.h)
	}
	if err := s.img.Copy(pix, w, h, stride, channels); err != nil {
		return KeyNone, err
	}
	if err := s.srv.SendExpose(s.w, s.h); err != nil {
		return KeyNone, err
	}
	return s.Wait(timeout)
}

// Wait dispatches pending events until a key is pressed or timeout
// elapses. With a timeout of zero or less it handles what is queued and
// returns. Pointer events go to the callback; a key press returns the key
// and leaves later events queued. Protocol errors are logged and treated
// like an empty queue. A lost connection shows up as an error from the
// checked requests of Show.
func (s *Sui) Wait(timeout time.Duration) (int, error) {
	if s.destroyed {
		return KeyNone, ErrDestroyed
	}
	start := time.Now()
	for {
		if timeout > 0 && time.Since(start) > timeout {
			break
		}
		ev, ok, err := s.srv.PollEvent()
		if err != nil {
			s.log.Debug("x protocol error", "err", err)
			ok = false
		}
		if !ok {
			if timeout <= 0 {
				break
			}
			time.Sleep(pollInterval)
			continue
		}
		switch ev.kind {
		case evExpose:
			if err := s.srv.PutImage(s.img); err != nil {
				s.log.Debug("repaint failed", "err", err)
			}
		case evButtonPress, evButtonRelease:
			code, flag := translateButton(ev.button, ev.kind == evButtonPress)
			s.cb(code, ev.x, ev.y, flag, s.data)
		case evMotion:
			s.cb(EventMouseMove, ev.x, ev.y, 0, s.data)
		case evKeyPress:
			return s.srv.LookupKey(ev.keycode), nil
		}
	}
	return KeyNone, nil
}

// translateButton maps an X pointer button to the callback event code and
// flag. Buttons other than the three main ones are reported as motion.
func translateButton(button int, press bool) (code, flag int) {
	switch button {
	case button1:
		if press {
			return EventLButtonDown, FlagLButton
		}
		return EventLButtonUp, FlagLButton
	case button3:
		if press {
			return EventRButtonDown, FlagRButton
		}
		return EventRButtonUp, FlagRButton
	case button2:
		if press {
			return EventMButtonDown, FlagMButton
		}
		return EventMButtonUp, FlagMButton
	}
	return EventMouseMove, 0
}

// Destroy closes the window and the display connection.
func (s *Sui) Destroy() error {
	if s.destroyed {
		return ErrDestroyed
	}
	err := s.srv.DestroyWindow()
	s.srv.Close()
	s.img = nil
	s.destroyed = true
	s.log.Debug("window destroyed")
	return err
}
