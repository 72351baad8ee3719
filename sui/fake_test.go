package sui

import (
	"github.com/pkg/errors"
)

type fakeServer struct {
	trueColor bool
	createErr error
	resizeErr error
	pollErr   error
	putErr    error

	events []event
	keys   map[byte]int

	created    bool
	fullscreen bool
	moves      [][2]int
	resizes    [][2]int
	puts       int
	lastPut    []uint8
	exposes    int
	polls      int
	destroyed  bool
	closed     bool
}

var errFake = errors.New("fake server failure")

func newFakeServer() *fakeServer {
	return &fakeServer{trueColor: true, keys: map[byte]int{}}
}

func (f *fakeServer) dialer() dialer {
	return func(string) (server, error) { return f, nil }
}

func (f *fakeServer) TrueColor() bool { return f.trueColor }

func (f *fakeServer) CreateWindow(w, h int, fullscreen bool) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = true
	f.fullscreen = fullscreen
	return nil
}

func (f *fakeServer) MoveWindow(x, y int) error {
	f.moves = append(f.moves, [2]int{x, y})
	return nil
}

func (f *fakeServer) ResizeWindow(w, h int) error {
	if f.resizeErr != nil {
		return f.resizeErr
	}
	f.resizes = append(f.resizes, [2]int{w, h})
	return nil
}

func (f *fakeServer) PutImage(img *Image) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.lastPut = append([]uint8(nil), img.Pix...)
	return nil
}

func (f *fakeServer) SendExpose(w, h int) error {
	f.exposes++
	f.events = append(f.events, event{kind: evExpose})
	return nil
}

func (f *fakeServer) PollEvent() (event, bool, error) {
	f.polls++
	if f.pollErr != nil {
		return event{}, false, f.pollErr
	}
	if len(f.events) == 0 {
		return event{}, false, nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true, nil
}

func (f *fakeServer) LookupKey(code byte) int {
	if k, ok := f.keys[code]; ok {
		return k
	}
	return int(code)
}

func (f *fakeServer) DestroyWindow() error {
	f.destroyed = true
	return nil
}

func (f *fakeServer) Close() { f.closed = true }
