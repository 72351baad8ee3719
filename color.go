package mui

import (
	"image/color"

	"github.com/esimov/mui/utils"
)

// Color is a packed 0xRRGGBB color.
type Color uint32

// Add shifts the brightness of every channel by delta, clamping each
// channel to the 0..255 range.
func (c Color) Add(delta int) Color {
	r, g, b := int(c>>16&0xFF), int(c>>8&0xFF), int(c&0xFF)
	r = utils.Clamp(r+delta, 0, 0xFF)
	g = utils.Clamp(g+delta, 0, 0xFF)
	b = utils.Clamp(b+delta, 0, 0xFF)
	return Color(r<<16 | g<<8 | b)
}

// BGR returns the channels in canvas byte order.
func (c Color) BGR() (b, g, r uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the color into its opaque image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}
