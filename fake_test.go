package mui

import (
	"time"

	"github.com/pkg/errors"
)

var errFake = errors.New("fake backend failure")

type fakeEvent struct {
	event, x, y, flag int
}

// fakeStep is what one Show call does: deliver events, then return key.
type fakeStep struct {
	events []fakeEvent
	key    int
}

// fakeBackend replays a script of steps. Once the script is exhausted
// Show returns KeyEscape so modal loops always end.
type fakeBackend struct {
	cb   Callback
	data any

	script []fakeStep
	shows  int
	last   struct{ w, h, stride, channels int }

	moved     bool
	resizeErr error
	resized   [][2]int
	destroyed bool
	showErr   error
}

func (f *fakeBackend) Move(x, y int) error {
	f.moved = true
	return nil
}

func (f *fakeBackend) Resize(w, h int) error {
	if f.resizeErr != nil {
		return f.resizeErr
	}
	f.resized = append(f.resized, [2]int{w, h})
	return nil
}

func (f *fakeBackend) SetCallback(cb Callback, data any) error {
	f.cb, f.data = cb, data
	return nil
}

func (f *fakeBackend) Show(pix []uint8, w, h, stride, channels int, timeout time.Duration) (int, error) {
	f.shows++
	f.last.w, f.last.h, f.last.stride, f.last.channels = w, h, stride, channels
	if f.showErr != nil {
		return KeyNone, f.showErr
	}
	if len(f.script) == 0 {
		return KeyEscape, nil
	}
	st := f.script[0]
	f.script = f.script[1:]
	for _, e := range st.events {
		f.cb(e.event, e.x, e.y, e.flag, f.data)
	}
	return st.key, nil
}

func (f *fakeBackend) Destroy() error {
	f.destroyed = true
	return nil
}

// click appends the two frames of a left click at x, y: press, release.
func (f *fakeBackend) click(x, y int) {
	f.script = append(f.script,
		fakeStep{key: KeyNone, events: []fakeEvent{
			{EventMouseMove, x, y, 0},
			{EventLButtonDown, x, y, FlagLButton},
		}},
		fakeStep{key: KeyNone, events: []fakeEvent{
			{EventLButtonUp, x, y, FlagLButton},
		}},
	)
}

// press appends one frame returning key.
func (f *fakeBackend) press(key int) {
	f.script = append(f.script, fakeStep{key: key})
}
