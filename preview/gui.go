// Package preview is a Backend running on top of Gio. It is meant for
// platforms without an X server; app.Main must own the main goroutine
// while a window is open.
package preview

import (
	"image"
	"io"
	"log/slog"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Mode selects how the window is presented.
type Mode int

const (
	Windowed Mode = iota
	Fullscreen
)

// Callback receives pointer events while Show waits for input.
type Callback = func(event, x, y, flag int, data any)

func noopCallback(int, int, int, int, any) {}

// input is a translated Gio event handed from the window goroutine to Show.
type input struct {
	event, x, y, flag int
	key               int
	isKey             bool
}

type options struct {
	title  string
	logger *slog.Logger
}

// Option customizes New.
type Option func(*options)

// WithTitle sets the window title.
func WithTitle(t string) Option {
	return func(o *options) { o.title = t }
}

// WithLogger sets the logger used for window lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Window is a Gio window showing frames handed to Show.
type Window struct {
	w, h int
	log  *slog.Logger
	win  *app.Window

	frames chan *image.RGBA
	sizes  chan image.Point
	inputs chan input
	done   chan struct{}

	cb        Callback
	data      any
	destroyed bool
}

// New opens a w×h window and starts its event loop.
func New(w, h int, mode Mode, opts ...Option) (*Window, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	o := options{title: "mui"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// The real scale is known from the first frame, which resizes the
	// window to w×h pixels.
	winOpts := []app.Option{
		app.Title(o.title),
		app.Size(toDp(image.Pt(w, h), 1)),
	}
	if mode == Fullscreen {
		winOpts = append(winOpts, app.Fullscreen.Option())
	} else {
		winOpts = append(winOpts, app.Decorated(false))
	}

	p := newWindow(w, h, o.logger)
	p.win = app.NewWindow(winOpts...)
	go p.run(image.Pt(w, h))
	return p, nil
}

func newWindow(w, h int, log *slog.Logger) *Window {
	return &Window{
		w:      w,
		h:      h,
		log:    log,
		frames: make(chan *image.RGBA, 1),
		sizes:  make(chan image.Point, 1),
		inputs: make(chan input, 256),
		done:   make(chan struct{}),
		cb:     noopCallback,
	}
}

// run is the Gio event loop. It paints the latest frame and forwards
// pointer and key events until the window is destroyed. size is the
// window size in pixels.
func (p *Window) run(size image.Point) {
	var (
		ops   op.Ops
		img   *image.RGBA
		prev  pointer.Buttons
		scale float32 = 1
	)
	defer close(p.done)

	for {
		select {
		case e := <-p.win.Events():
			switch e := e.(type) {
			case system.FrameEvent:
				if s := e.Metric.PxPerDp; s > 0 && s != scale {
					scale = s
					p.win.Option(app.Size(toDp(size, scale)))
				}
				gtx := layout.NewContext(&ops, e)
				for _, ev := range gtx.Events(p) {
					switch ev := ev.(type) {
					case pointer.Event:
						for _, in := range translatePointer(ev.Type, ev.Buttons, prev, ev.Position) {
							p.forward(in)
						}
						prev = ev.Buttons
					case key.Event:
						if k, ok := translateKey(ev); ok {
							p.forward(input{key: k, isKey: true})
						}
					}
				}

				area := clip.Rect(image.Rectangle{Max: e.Size}).Push(gtx.Ops)
				pointer.InputOp{
					Tag:   p,
					Types: pointer.Press | pointer.Release | pointer.Move | pointer.Drag,
				}.Add(gtx.Ops)
				key.InputOp{Tag: p}.Add(gtx.Ops)
				key.FocusOp{Tag: p}.Add(gtx.Ops)
				if img != nil {
					paint.NewImageOp(img).Add(gtx.Ops)
					paint.PaintOp{}.Add(gtx.Ops)
				}
				area.Pop()
				e.Frame(gtx.Ops)
			case system.DestroyEvent:
				if e.Err != nil {
					p.log.Debug("window closed with error", "err", e.Err)
				}
				return
			}
		case img = <-p.frames:
			p.win.Invalidate()
		case size = <-p.sizes:
			p.win.Option(app.Size(toDp(size, scale)))
		}
	}
}

// forward hands an event to Show, dropping it when nobody is reading.
func (p *Window) forward(in input) {
	select {
	case p.inputs <- in:
	default:
		p.log.Debug("input queue full, dropping event")
	}
}

// Move is not supported by Gio and does nothing.
func (p *Window) Move(x, y int) error {
	if p.destroyed {
		return ErrDestroyed
	}
	return nil
}

// Resize asks Gio for a new window size in pixels.
func (p *Window) Resize(w, h int) error {
	if p.destroyed {
		return ErrDestroyed
	}
	if w <= 0 || h <= 0 {
		return ErrInvalidSize
	}
	if w == p.w && h == p.h {
		return nil
	}
	select {
	case <-p.sizes:
	default:
	}
	p.sizes <- image.Pt(w, h)
	p.w, p.h = w, h
	return nil
}

// toDp converts a size in pixels to Gio's device independent units.
func toDp(px image.Point, pxPerDp float32) (w, h unit.Dp) {
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	return unit.Dp(float32(px.X) / pxPerDp), unit.Dp(float32(px.Y) / pxPerDp)
}

// SetCallback installs the pointer callback; nil ignores pointer events.
func (p *Window) SetCallback(cb Callback, data any) error {
	if p.destroyed {
		return ErrDestroyed
	}
	if cb == nil {
		cb = noopCallback
	}
	p.cb, p.data = cb, data
	return nil
}

// Destroy closes the window and waits briefly for its loop to end.
func (p *Window) Destroy() error {
	if p.destroyed {
		return ErrDestroyed
	}
	p.destroyed = true
	p.win.Perform(system.ActionClose)
	select {
	case <-p.done:
	case <-time.After(time.Second):
		p.log.Debug("window did not report its destruction")
	}
	return nil
}

// translatePointer turns a Gio pointer event into callback events. prev
// is the button set of the previous event, used to tell which button
// went down or up.
func translatePointer(typ pointer.Type, buttons, prev pointer.Buttons, pos f32.Point) []input {
	x, y := int(pos.X), int(pos.Y)
	var changed pointer.Buttons
	switch typ {
	case pointer.Press:
		changed = buttons &^ prev
	case pointer.Release:
		changed = prev &^ buttons
	case pointer.Move, pointer.Drag:
		return []input{{event: eventMouseMove, x: x, y: y}}
	default:
		return nil
	}

	var out []input
	for _, b := range []struct {
		button   pointer.Buttons
		flag     int
		down, up int
	}{
		{pointer.ButtonPrimary, flagLButton, eventLButtonDown, eventLButtonUp},
		{pointer.ButtonSecondary, flagRButton, eventRButtonDown, eventRButtonUp},
		{pointer.ButtonTertiary, flagMButton, eventMButtonDown, eventMButtonUp},
	} {
		if !changed.Contain(b.button) {
			continue
		}
		code := b.down
		if typ == pointer.Release {
			code = b.up
		}
		out = append(out, input{event: code, x: x, y: y, flag: b.flag})
	}
	if len(out) == 0 {
		out = append(out, input{event: eventMouseMove, x: x, y: y})
	}
	return out
}
