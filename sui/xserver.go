package sui

import (
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

const eventMask = xproto.EventMaskPointerMotion |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskExposure |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease

// xserver is the X11 protocol implementation of server.
type xserver struct {
	conn   *xgb.Conn
	setup  *xproto.SetupInfo
	screen *xproto.ScreenInfo
	log    *slog.Logger

	win    xproto.Window
	gc     xproto.Gcontext
	hasWin bool
	hasGC  bool

	keys *keymap
}

func dialX(log *slog.Logger) dialer {
	return func(display string) (server, error) {
		conn, err := xgb.NewConnDisplay(display)
		if err != nil {
			return nil, errors.Wrap(ErrConnect, err.Error())
		}
		setup := xproto.Setup(conn)
		x := &xserver{
			conn:   conn,
			setup:  setup,
			screen: setup.DefaultScreen(conn),
			log:    log,
		}
		x.keys = x.loadKeymap()
		return x, nil
	}
}

func (x *xserver) loadKeymap() *keymap {
	count := int(x.setup.MaxKeycode) - int(x.setup.MinKeycode) + 1
	if count <= 0 {
		return nil
	}
	reply, err := xproto.GetKeyboardMapping(x.conn, x.setup.MinKeycode, byte(count)).Reply()
	if err != nil {
		x.log.Debug("keyboard mapping unavailable, using the builtin table", "err", err)
		return nil
	}
	syms := make([]uint32, len(reply.Keysyms))
	for i, s := range reply.Keysyms {
		syms[i] = uint32(s)
	}
	return &keymap{
		minCode: byte(x.setup.MinKeycode),
		perCode: int(reply.KeysymsPerKeycode),
		keysyms: syms,
	}
}

func (x *xserver) TrueColor() bool {
	if x.screen.RootDepth != 24 {
		return false
	}
	for _, d := range x.screen.AllowedDepths {
		for _, v := range d.Visuals {
			if v.VisualId == x.screen.RootVisual {
				return v.Class == xproto.VisualClassTrueColor
			}
		}
	}
	return false
}

func (x *xserver) CreateWindow(w, h int, fullscreen bool) error {
	win, err := xproto.NewWindowId(x.conn)
	if err != nil {
		return errors.Wrap(err, "allocating window id")
	}
	err = xproto.CreateWindowChecked(x.conn, x.screen.RootDepth, win, x.screen.Root,
		0, 0, uint16(w), uint16(h), 0,
		xproto.WindowClassInputOutput, x.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{0, eventMask},
	).Check()
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	x.win = win
	x.hasWin = true

	if fullscreen {
		err = x.setAtomProperty("_NET_WM_STATE", xproto.AtomAtom, "_NET_WM_STATE_FULLSCREEN")
	} else {
		err = x.setMotifHints()
	}
	if err != nil {
		return err
	}

	if err := xproto.MapWindowChecked(x.conn, win).Check(); err != nil {
		return errors.Wrap(err, "mapping window")
	}

	gc, err := xproto.NewGcontextId(x.conn)
	if err != nil {
		return errors.Wrap(err, "allocating graphics context id")
	}
	if err := xproto.CreateGCChecked(x.conn, gc, xproto.Drawable(win), 0, nil).Check(); err != nil {
		return errors.Wrap(err, "creating graphics context")
	}
	x.gc = gc
	x.hasGC = true
	return nil
}

func (x *xserver) atom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(x.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, errors.Wrapf(err, "interning atom %s", name)
	}
	return reply.Atom, nil
}

func (x *xserver) setAtomProperty(prop string, typ xproto.Atom, value string) error {
	p, err := x.atom(prop)
	if err != nil {
		return err
	}
	v, err := x.atom(value)
	if err != nil {
		return err
	}
	data := make([]byte, 4)
	xgb.Put32(data, uint32(v))
	return errors.Wrapf(
		xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, x.win, p, typ, 32, 1, data).Check(),
		"setting %s", prop,
	)
}

// setMotifHints asks the window manager for a window without decorations.
func (x *xserver) setMotifHints() error {
	p, err := x.atom("_MOTIF_WM_HINTS")
	if err != nil {
		return err
	}
	// flags, functions, decorations, input mode, status
	hints := []uint32{2, 0, 0, 0, 0}
	data := make([]byte, 4*len(hints))
	for i, v := range hints {
		xgb.Put32(data[4*i:], v)
	}
	return errors.Wrap(
		xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, x.win, p, p, 32, uint32(len(hints)), data).Check(),
		"setting _MOTIF_WM_HINTS",
	)
}

func (x *xserver) MoveWindow(px, py int) error {
	return errors.Wrap(
		xproto.ConfigureWindowChecked(x.conn, x.win,
			xproto.ConfigWindowX|xproto.ConfigWindowY,
			[]uint32{uint32(int32(px)), uint32(int32(py))},
		).Check(),
		"moving window",
	)
}

func (x *xserver) ResizeWindow(w, h int) error {
	return errors.Wrap(
		xproto.ConfigureWindowChecked(x.conn, x.win,
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(w), uint32(h)},
		).Check(),
		"resizing window",
	)
}

// PutImage uploads img in horizontal bands that fit the server's
// maximum request length. Only the last band is checked; errors from the
// earlier ones arrive through PollEvent.
func (x *xserver) PutImage(img *Image) error {
	maxBytes := int(x.setup.MaximumRequestLength)*4 - 24
	rows := maxBytes / img.Stride
	if rows < 1 {
		rows = 1
	}
	for y := 0; y < img.H; y += rows {
		n := rows
		if y+n >= img.H {
			n = img.H - y
			data := img.Pix[y*img.Stride : (y+n)*img.Stride]
			return errors.Wrap(
				xproto.PutImageChecked(x.conn, xproto.ImageFormatZPixmap, xproto.Drawable(x.win), x.gc,
					uint16(img.W), uint16(n), 0, int16(y), 0, x.screen.RootDepth, data).Check(),
				"uploading image",
			)
		}
		data := img.Pix[y*img.Stride : (y+n)*img.Stride]
		xproto.PutImage(x.conn, xproto.ImageFormatZPixmap, xproto.Drawable(x.win), x.gc,
			uint16(img.W), uint16(n), 0, int16(y), 0, x.screen.RootDepth, data)
	}
	return nil
}

func (x *xserver) SendExpose(w, h int) error {
	ev := xproto.ExposeEvent{
		Window: x.win,
		Width:  uint16(w),
		Height: uint16(h),
	}
	return errors.Wrap(
		xproto.SendEventChecked(x.conn, false, x.win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check(),
		"sending expose",
	)
}

func (x *xserver) PollEvent() (event, bool, error) {
	ev, xerr := x.conn.PollForEvent()
	if xerr != nil {
		return event{}, true, xerr
	}
	if ev == nil {
		return event{}, false, nil
	}
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		return event{kind: evExpose}, true, nil
	case xproto.ButtonPressEvent:
		return event{kind: evButtonPress, x: int(e.EventX), y: int(e.EventY), button: int(e.Detail)}, true, nil
	case xproto.ButtonReleaseEvent:
		return event{kind: evButtonRelease, x: int(e.EventX), y: int(e.EventY), button: int(e.Detail)}, true, nil
	case xproto.MotionNotifyEvent:
		return event{kind: evMotion, x: int(e.EventX), y: int(e.EventY)}, true, nil
	case xproto.KeyPressEvent:
		return event{kind: evKeyPress, keycode: byte(e.Detail)}, true, nil
	}
	return event{kind: evOther}, true, nil
}

func (x *xserver) LookupKey(code byte) int {
	return x.keys.lookup(code)
}

func (x *xserver) DestroyWindow() error {
	if x.hasGC {
		xproto.FreeGC(x.conn, x.gc)
		x.hasGC = false
	}
	if !x.hasWin {
		return nil
	}
	x.hasWin = false
	return errors.Wrap(xproto.DestroyWindowChecked(x.conn, x.win).Check(), "destroying window")
}

func (x *xserver) Close() {
	x.conn.Close()
}
