package mui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clickAt(s *Screen, x, y int) {
	s.Input.Handle(EventMouseMove, x, y, 0, nil)
	s.Input.Handle(EventLButtonDown, x, y, FlagLButton, nil)
	s.Input.Handle(EventLButtonUp, x, y, FlagLButton, nil)
}

func TestCheckBox_TogglesOnClick(t *testing.T) {
	s, _ := newTestScreen(t, 100, 100)
	cb := NewCheckBox()
	checked := false
	draw := func() Status { return cb.Draw(s, "check", &checked, 0, 0, 80, 20) }

	assert.Equal(t, Idle, draw())
	// box is 16px at 2,2; the inner square starts at 5,5
	assert.Equal(t, cb.Style.Color, pixel(s, 8, 8))

	clickAt(s, 8, 8)
	assert.Equal(t, Clicked, draw())
	assert.True(t, checked)
	assert.Equal(t, cb.Style.Inner, pixel(s, 8, 8))
	assert.Equal(t, cb.Style.Outer, pixel(s, 2, 8))

	s.Input.Handle(EventMouseMove, 90, 90, 0, nil)
	assert.Equal(t, Idle, draw())
	assert.True(t, checked)

	clickAt(s, 8, 8)
	assert.Equal(t, Clicked, draw())
	assert.False(t, checked)
	assert.Equal(t, cb.Style.Color, pixel(s, 8, 8))
}

func TestCheckBox_ExternalChangeNeedsRedraw(t *testing.T) {
	s, _ := newTestScreen(t, 100, 100)
	cb := NewCheckBox()
	checked := false
	cb.Draw(s, "", &checked, 0, 0, 80, 20)

	checked = true
	cb.Draw(s, "", &checked, 0, 0, 80, 20)
	assert.Equal(t, cb.Style.Color, pixel(s, 8, 8))

	cb.Redraw()
	cb.Draw(s, "", &checked, 0, 0, 80, 20)
	assert.Equal(t, cb.Style.Inner, pixel(s, 8, 8))
}

func TestRadioBox_Exclusive(t *testing.T) {
	s, _ := newTestScreen(t, 200, 100)
	a, b := NewRadioBox(), NewRadioBox()
	selected := 1
	frame := func() {
		a.Draw(s, "a", 1, &selected, 0, 0, 80, 20)
		b.Draw(s, "b", 2, &selected, 0, 40, 80, 20)
	}

	frame()
	assert.True(t, a.Checked())
	assert.False(t, b.Checked())
	assert.Equal(t, 2, s.Canvas.Paints())
	frame()
	assert.Equal(t, 2, s.Canvas.Paints())

	clickAt(s, 10, 50)
	frame()
	assert.Equal(t, 2, selected)
	assert.Equal(t, Clicked, b.Status())
	assert.True(t, b.Checked())
	assert.Equal(t, 3, s.Canvas.Paints())

	s.Input.Handle(EventMouseMove, 150, 90, 0, nil)
	frame()
	assert.False(t, a.Checked(), "a repaints as unchecked although it saw no click")
	assert.True(t, b.Checked())
	assert.Equal(t, Idle, a.Status())
	assert.Equal(t, 5, s.Canvas.Paints())

	// center of the inner disc
	assert.Equal(t, b.Style.Inner, pixel(s, 9, 49))
	assert.Equal(t, a.Style.Color, pixel(s, 9, 9))
}

func TestRangeBox_WrapsAndClamps(t *testing.T) {
	s, _ := newTestScreen(t, 200, 100)
	rb := NewRangeBox()
	val := 100.0

	s.Input.Handle(EventMouseMove, 10, 10, 0, nil)
	s.Input.Handle(EventLButtonDown, 10, 10, FlagLButton, nil)

	assert.Equal(t, Pressed, rb.Draw(s, &val, 0, 100, 1, 0, 0, 100, 20))
	assert.Equal(t, 0.0, val, "stepping past max starts over at min")

	rb.Draw(s, &val, 0, 100, 1, 0, 0, 100, 20)
	assert.Equal(t, 1.0, val)

	val = 0.5
	rb.Draw(s, &val, 0, 100, -1, 0, 0, 100, 20)
	assert.Equal(t, 0.0, val, "stepping below min stays at min")
	assert.Equal(t, 3, s.Canvas.Paints(), "a held box repaints every frame the value moves")

	s.Input.Handle(EventLButtonUp, 10, 10, FlagLButton, nil)
	assert.Equal(t, Idle, rb.Draw(s, &val, 0, 100, 1, 0, 0, 100, 20))
	assert.Equal(t, 0.0, val)
	assert.Equal(t, 4, s.Canvas.Paints())
	rb.Draw(s, &val, 0, 100, 1, 0, 0, 100, 20)
	assert.Equal(t, 4, s.Canvas.Paints())
}

func TestRangeBox_BarLength(t *testing.T) {
	s, _ := newTestScreen(t, 200, 100)
	rb := NewRangeBox()
	val := 50.0

	rb.Draw(s, &val, 0, 100, 1, 0, 0, 110, 30)
	// inner spans 5..105, half of it is filled
	assert.Equal(t, rb.Style.Inner, pixel(s, 6, 8))
	assert.Equal(t, rb.Style.Inner, pixel(s, 54, 8))
	assert.Equal(t, rb.Style.Color, pixel(s, 56, 8))
}
