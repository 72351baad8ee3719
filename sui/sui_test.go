package sui

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callRecord struct {
	event, x, y, flag int
	data              any
}

func openFake(t *testing.T, mode Mode) (*Sui, *fakeServer) {
	t.Helper()
	srv := newFakeServer()
	ui, err := Create(4, 3, mode, withDialer(srv.dialer()))
	require.NoError(t, err)
	return ui, srv
}

func TestSui_CreateFillsBackground(t *testing.T) {
	ui, srv := openFake(t, Windowed)

	assert.True(t, srv.created)
	assert.False(t, srv.fullscreen)
	w, h := ui.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	for i := 0; i < len(ui.img.Pix); i += 4 {
		assert.Equal(t, []uint8{0x2C, 0x2C, 0x2C}, ui.img.Pix[i:i+3])
	}
}

func TestSui_CreateRejectsNonTrueColor(t *testing.T) {
	srv := newFakeServer()
	srv.trueColor = false

	ui, err := Create(4, 3, Windowed, withDialer(srv.dialer()))
	assert.Nil(t, ui)
	assert.ErrorIs(t, err, ErrUnsupportedVisual)
	assert.True(t, srv.closed)
	assert.False(t, srv.created)
}

func TestSui_CreateReleasesOnWindowFailure(t *testing.T) {
	srv := newFakeServer()
	srv.createErr = errFake

	ui, err := Create(4, 3, Fullscreen, withDialer(srv.dialer()))
	assert.Nil(t, ui)
	assert.ErrorIs(t, err, errFake)
	assert.True(t, srv.destroyed)
	assert.True(t, srv.closed)
}

func TestSui_CreateDialFailure(t *testing.T) {
	dial := func(string) (server, error) { return nil, errors.Wrap(ErrConnect, "no display") }
	_, err := Create(4, 3, Windowed, withDialer(dial))
	assert.ErrorIs(t, err, ErrConnect)
}

func TestSui_CreateInvalidSize(t *testing.T) {
	srv := newFakeServer()
	_, err := Create(0, 3, Windowed, withDialer(srv.dialer()))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Create(1<<16, 3, Windowed, withDialer(srv.dialer()))
	assert.ErrorIs(t, err, ErrAlloc)
}

func TestSui_MoveIgnoredInFullscreen(t *testing.T) {
	ui, srv := openFake(t, Fullscreen)
	assert.True(t, srv.fullscreen)

	require.NoError(t, ui.Move(10, 20))
	assert.Empty(t, srv.moves)

	win, wsrv := openFake(t, Windowed)
	require.NoError(t, win.Move(10, 20))
	assert.Equal(t, [][2]int{{10, 20}}, wsrv.moves)
}

func TestSui_Resize(t *testing.T) {
	ui, srv := openFake(t, Windowed)

	require.NoError(t, ui.Resize(4, 3))
	assert.Empty(t, srv.resizes, "same size is a no-op")

	require.NoError(t, ui.Resize(8, 6))
	w, h := ui.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 6, h)
	assert.Equal(t, 8, ui.img.W)
	assert.Len(t, ui.img.Pix, 8*6*4)
}

func TestSui_ResizeFailureKeepsState(t *testing.T) {
	ui, srv := openFake(t, Windowed)
	old := ui.img
	srv.resizeErr = errFake

	assert.ErrorIs(t, ui.Resize(8, 6), errFake)
	w, h := ui.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Same(t, old, ui.img)

	assert.ErrorIs(t, ui.Resize(-1, 6), ErrInvalidSize)
	assert.Same(t, old, ui.img)
}

func TestSui_ShowPaintsAndTranslatesEvents(t *testing.T) {
	ui, srv := openFake(t, Windowed)
	var calls []callRecord
	require.NoError(t, ui.SetCallback(func(e, x, y, flag int, data any) {
		calls = append(calls, callRecord{e, x, y, flag, data})
	}, "payload"))

	srv.events = []event{
		{kind: evMotion, x: 1, y: 2},
		{kind: evButtonPress, x: 1, y: 2, button: button1},
		{kind: evButtonRelease, x: 1, y: 2, button: button1},
		{kind: evButtonPress, x: 3, y: 0, button: button3},
		{kind: evButtonRelease, x: 3, y: 0, button: button2},
		{kind: evButtonPress, x: 2, y: 2, button: 4},
		{kind: evOther},
	}

	frame := make([]uint8, 4*3*3)
	for i := range frame {
		frame[i] = uint8(i)
	}
	key, err := ui.Show(frame, 4, 3, 12, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, KeyNone, key)
	assert.Equal(t, 1, srv.exposes)
	assert.Equal(t, 1, srv.puts)
	assert.Equal(t, []uint8{0, 1, 2}, srv.lastPut[0:3])
	assert.Equal(t, []uint8{3, 4, 5}, srv.lastPut[4:7])

	assert.Equal(t, []callRecord{
		{EventMouseMove, 1, 2, 0, "payload"},
		{EventLButtonDown, 1, 2, FlagLButton, "payload"},
		{EventLButtonUp, 1, 2, FlagLButton, "payload"},
		{EventRButtonDown, 3, 0, FlagRButton, "payload"},
		{EventMButtonUp, 3, 0, FlagMButton, "payload"},
		{EventMouseMove, 2, 2, 0, "payload"},
	}, calls)
}

func TestSui_KeyPressReturnsImmediately(t *testing.T) {
	ui, srv := openFake(t, Windowed)
	srv.keys[9] = KeyEscape
	srv.events = []event{
		{kind: evKeyPress, keycode: 9},
		{kind: evMotion, x: 1, y: 1},
	}

	key, err := ui.Wait(time.Second)
	require.NoError(t, err)
	assert.Equal(t, KeyEscape, key)
	assert.Len(t, srv.events, 1, "later events stay queued")
}

func TestSui_WaitTimesOut(t *testing.T) {
	ui, _ := openFake(t, Windowed)

	start := time.Now()
	key, err := ui.Wait(10 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, KeyNone, key)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSui_ShowSizeMismatch(t *testing.T) {
	ui, srv := openFake(t, Windowed)

	_, err := ui.Show(make([]uint8, 5*3*3), 5, 3, 15, 3, 0)
	assert.ErrorIs(t, err, ErrSizeMismatch)
	assert.Zero(t, srv.exposes)

	_, err = ui.Show(make([]uint8, 4*3*2), 4, 3, 8, 2, 0)
	assert.ErrorIs(t, err, ErrUnsupportedChannels)
}

func TestSui_NilCallbackRestoresNoop(t *testing.T) {
	ui, srv := openFake(t, Windowed)
	called := false
	require.NoError(t, ui.SetCallback(func(int, int, int, int, any) { called = true }, nil))
	require.NoError(t, ui.SetCallback(nil, nil))

	srv.events = []event{{kind: evMotion}}
	_, err := ui.Wait(0)
	require.NoError(t, err)
	assert.False(t, called)
}

func TestSui_DestroyedRejectsCalls(t *testing.T) {
	ui, srv := openFake(t, Windowed)

	require.NoError(t, ui.Destroy())
	assert.True(t, srv.destroyed)
	assert.True(t, srv.closed)
	assert.Nil(t, ui.img)

	assert.ErrorIs(t, ui.Move(1, 1), ErrDestroyed)
	assert.ErrorIs(t, ui.Resize(8, 8), ErrDestroyed)
	assert.ErrorIs(t, ui.SetCallback(nil, nil), ErrDestroyed)
	_, err := ui.Show(make([]uint8, 36), 4, 3, 12, 3, 0)
	assert.ErrorIs(t, err, ErrDestroyed)
	_, err = ui.Wait(0)
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.ErrorIs(t, ui.Destroy(), ErrDestroyed)
}

func TestSui_WaitSurvivesProtocolErrors(t *testing.T) {
	ui, srv := openFake(t, Windowed)
	srv.pollErr = errFake

	done := make(chan struct{})
	go func() {
		defer close(done)
		key, err := ui.Wait(0)
		assert.NoError(t, err)
		assert.Equal(t, KeyNone, key)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait(0) kept polling after a protocol error")
	}
	assert.Equal(t, 1, srv.polls)

	srv.polls = 0
	key, err := ui.Wait(20 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, KeyNone, key)
	assert.LessOrEqual(t, srv.polls, 20, "errors sleep between polls")
}

func TestSui_RepaintFailureKeepsWaiting(t *testing.T) {
	ui, srv := openFake(t, Windowed)
	srv.putErr = errFake
	srv.events = []event{{kind: evExpose}, {kind: evKeyPress, keycode: 'x'}}

	key, err := ui.Wait(time.Second)
	require.NoError(t, err)
	assert.Equal(t, int('x'), key)
	assert.Equal(t, 1, srv.puts)
}
