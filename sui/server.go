package sui

// eventKind identifies the translated server events the wait loop cares about.
type eventKind int

const (
	evExpose eventKind = iota
	evButtonPress
	evButtonRelease
	evMotion
	evKeyPress
	evOther
)

// X core pointer buttons.
const (
	button1 = 1
	button2 = 2
	button3 = 3
)

// event is a server event reduced to the fields the backend reads.
type event struct {
	kind    eventKind
	x, y    int
	button  int
	keycode byte
}

// server is the subset of an X connection used by Sui. The production
// implementation talks the X11 protocol through xgb; tests substitute a
// fake that records requests and replays scripted events.
type server interface {
	// TrueColor reports whether the default visual is 24 bit TrueColor.
	TrueColor() bool
	CreateWindow(w, h int, fullscreen bool) error
	MoveWindow(x, y int) error
	ResizeWindow(w, h int) error
	// PutImage uploads the whole image into the window.
	PutImage(img *Image) error
	// SendExpose queues a synthetic expose event covering w×h.
	SendExpose(w, h int) error
	// PollEvent returns the next queued event without blocking.
	// ok is false when the queue is empty.
	PollEvent() (ev event, ok bool, err error)
	// LookupKey translates a hardware keycode into a key code.
	LookupKey(code byte) int
	DestroyWindow() error
	Close()
}

// dialer opens a server connection for the named display.
type dialer func(display string) (server, error)
