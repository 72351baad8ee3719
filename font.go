package mui

import (
	"image"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Align is the horizontal placement of text inside its rectangle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DefaultFontSize is the pixel size of widget text.
const DefaultFontSize = 13

var faces = struct {
	sync.Mutex
	font  *opentype.Font
	sizes map[float64]font.Face
}{sizes: make(map[float64]font.Face)}

// face returns the Go Regular face at the given size, parsing the font on
// first use.
func face(size float64) font.Face {
	faces.Lock()
	defer faces.Unlock()

	if f, ok := faces.sizes[size]; ok {
		return f
	}
	if faces.font == nil {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(errors.Wrap(err, "parsing the embedded font"))
		}
		faces.font = f
	}
	f, err := opentype.NewFace(faces.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(errors.Wrapf(err, "creating a %v px face", size))
	}
	faces.sizes[size] = f
	return f
}

// Font describes how widget text is rendered.
type Font struct {
	Color    Color
	Disabled Color
	Size     float64
}

// DefaultFont returns the light gray font used by every widget.
func DefaultFont() Font {
	c := Color(0xE3E3E3)
	return Font{Color: c, Disabled: c.Add(-0xA3), Size: DefaultFontSize}
}

func (f Font) face() font.Face {
	size := f.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	return face(size)
}

// Measure returns the width of text and the cap height of the font.
func (f Font) Measure(text string) Size {
	ff := f.face()
	m := ff.Metrics()
	h := m.CapHeight
	if h <= 0 {
		h = m.Ascent
	}
	return Size{
		Width:  font.MeasureString(ff, text).Ceil(),
		Height: h.Ceil(),
	}
}

// origin returns the baseline start of text placed in roi.
func (f Font) origin(text string, roi image.Rectangle, align Align) image.Point {
	ts := f.Measure(text)
	p := image.Point{Y: roi.Min.Y + (roi.Dy()+ts.Height)/2 - 1}
	switch align {
	case AlignLeft:
		p.X = roi.Min.X + 1
	case AlignRight:
		p.X = roi.Max.X - ts.Width
	default:
		p.X = roi.Min.X + (roi.Dx()-ts.Width)/2
	}
	return p
}

// Draw renders text into area, placed inside roi. Both are in absolute
// canvas coordinates; glyphs are clipped to area.
func (f Font) Draw(area *Canvas, roi image.Rectangle, text string, disabled bool, align Align) {
	if text == "" || area.Bounds().Empty() {
		return
	}
	c := f.Color
	if disabled {
		c = f.Disabled
	}
	p := f.origin(text, roi, align)
	d := font.Drawer{
		Dst:  area,
		Src:  image.NewUniform(c),
		Face: f.face(),
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(text)
}
