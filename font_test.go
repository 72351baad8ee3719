package mui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFont_Measure(t *testing.T) {
	f := DefaultFont()
	short, long := f.Measure("ab"), f.Measure("abcdef")

	assert.Positive(t, short.Width)
	assert.Greater(t, long.Width, short.Width)
	assert.Equal(t, short.Height, long.Height)
	assert.Positive(t, short.Height)

	big := Font{Size: 26}
	assert.Greater(t, big.Measure("ab").Width, short.Width)
	assert.Same(t, face(DefaultFontSize), face(DefaultFontSize))
}

func TestFont_Origin(t *testing.T) {
	f := DefaultFont()
	roi := Rect(10, 10, 100, 30)
	ts := f.Measure("text")

	assert.Equal(t, image.Pt(11, 10+(30+ts.Height)/2-1), f.origin("text", roi, AlignLeft))
	assert.Equal(t, 110-ts.Width, f.origin("text", roi, AlignRight).X)
	assert.Equal(t, 10+(100-ts.Width)/2, f.origin("text", roi, AlignCenter).X)
}

// litColumns returns the leftmost and rightmost columns of c holding a
// pixel other than bg.
func litColumns(c *Canvas, bg Color) (int, int) {
	first, last := -1, -1
	b := c.Bounds()
	want := bg.NRGBA()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			r, g, bb, _ := c.At(x, y).RGBA()
			if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(bb>>8) != want.B {
				if first < 0 {
					first = x
				}
				last = x
				break
			}
		}
	}
	return first, last
}

func TestFont_DrawAligns(t *testing.T) {
	f := DefaultFont()
	bg := Color(0x000000)

	for _, tc := range []struct {
		align    Align
		min, max int
	}{
		{AlignLeft, 0, 60},
		{AlignCenter, 60, 140},
		{AlignRight, 140, 200},
	} {
		c := NewCanvas(200, 30)
		f.Draw(c, c.Bounds(), "mmm", false, tc.align)
		first, last := litColumns(c, bg)
		assert.GreaterOrEqual(t, first, tc.min, "align %d", tc.align)
		assert.LessOrEqual(t, last, tc.max, "align %d", tc.align)
	}

	c := NewCanvas(50, 20)
	f.Draw(c, c.Bounds(), "", false, AlignLeft)
	first, _ := litColumns(c, bg)
	assert.Equal(t, -1, first)
}

func TestFont_DrawClipsToArea(t *testing.T) {
	c := NewCanvas(100, 30)
	area := c.SubImage(Rect(0, 0, 20, 30))
	DefaultFont().Draw(area, Rect(0, 0, 100, 30), "mmmmmmmmmm", false, AlignLeft)

	_, last := litColumns(c, 0)
	assert.Less(t, last, 20)
}
