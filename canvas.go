package mui

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Canvas is a 3 channel pixel buffer stored in B, G, R byte order. Views
// made with SubImage or Region share the pixels of their parent and keep
// its absolute coordinates, like image.RGBA does.
type Canvas struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle

	paints *int
}

// NewCanvas allocates a w×h canvas.
func NewCanvas(w, h int) *Canvas {
	r := image.Rect(0, 0, w, h)
	return &Canvas{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
		paints: new(int),
	}
}

func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

func (c *Canvas) Bounds() image.Rectangle { return c.Rect }

func (c *Canvas) At(x, y int) color.Color {
	if !image.Pt(x, y).In(c.Rect) {
		return color.RGBA{}
	}
	i := c.PixOffset(x, y)
	return color.RGBA{R: c.Pix[i+2], G: c.Pix[i+1], B: c.Pix[i], A: 0xFF}
}

func (c *Canvas) Set(x, y int, col color.Color) {
	if !image.Pt(x, y).In(c.Rect) {
		return
	}
	i := c.PixOffset(x, y)
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	c.Pix[i+0] = rgba.B
	c.Pix[i+1] = rgba.G
	c.Pix[i+2] = rgba.R
}

// PixOffset returns the index of the first byte of the pixel at x, y.
func (c *Canvas) PixOffset(x, y int) int {
	return (y-c.Rect.Min.Y)*c.Stride + (x-c.Rect.Min.X)*3
}

// SubImage returns a view of the canvas restricted to r.
func (c *Canvas) SubImage(r image.Rectangle) *Canvas {
	r = r.Intersect(c.Rect)
	if r.Empty() {
		return &Canvas{Rect: r, Stride: c.Stride, paints: c.paints}
	}
	i := c.PixOffset(r.Min.X, r.Min.Y)
	return &Canvas{
		Pix:    c.Pix[i:],
		Stride: c.Stride,
		Rect:   r,
		paints: c.paints,
	}
}

// Region is SubImage for a widget repaint: every call is counted in
// Paints.
func (c *Canvas) Region(r image.Rectangle) *Canvas {
	*c.paints++
	return c.SubImage(r)
}

// Paints returns the number of regions handed out for painting by this
// canvas and all of its views.
func (c *Canvas) Paints() int {
	return *c.paints
}

// Fill paints the whole view with col.
func (c *Canvas) Fill(col Color) {
	if c.Rect.Empty() {
		return
	}
	b, g, r := col.BGR()
	w := c.Rect.Dx()
	row := c.Pix[:3*w]
	for i := 0; i < len(row); i += 3 {
		row[i+0] = b
		row[i+1] = g
		row[i+2] = r
	}
	for y := 1; y < c.Rect.Dy(); y++ {
		copy(c.Pix[y*c.Stride:y*c.Stride+3*w], row)
	}
}

// Clone returns a tightly packed copy of the view with its own paint
// counter.
func (c *Canvas) Clone() *Canvas {
	dst := NewCanvas(c.Rect.Dx(), c.Rect.Dy())
	dst.Rect = c.Rect
	dst.CopyFrom(c)
	return dst
}

// CopyFrom copies the pixels of src that overlap the view.
func (c *Canvas) CopyFrom(src *Canvas) {
	r := c.Rect.Intersect(src.Rect)
	if r.Empty() {
		return
	}
	n := 3 * r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := c.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X, y)
		copy(c.Pix[di:di+n], src.Pix[si:si+n])
	}
}

// Overlay is a saved canvas region that can be put back with Restore.
type Overlay struct {
	dst   *Canvas
	saved *Canvas
}

// Overlay saves the pixels under r. The caller restores them, usually with
// a deferred call to Restore.
func (c *Canvas) Overlay(r image.Rectangle) *Overlay {
	view := c.SubImage(r)
	return &Overlay{dst: view, saved: view.Clone()}
}

// Restore writes the saved pixels back.
func (o *Overlay) Restore() {
	o.dst.CopyFrom(o.saved)
}

// ToRGBA converts the view into an image.RGBA with the same bounds.
func (c *Canvas) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(c.Rect)
	for y := c.Rect.Min.Y; y < c.Rect.Max.Y; y++ {
		si := c.PixOffset(c.Rect.Min.X, y)
		di := dst.PixOffset(c.Rect.Min.X, y)
		for x := 0; x < c.Rect.Dx(); x++ {
			dst.Pix[di+0] = c.Pix[si+2]
			dst.Pix[di+1] = c.Pix[si+1]
			dst.Pix[di+2] = c.Pix[si+0]
			dst.Pix[di+3] = 0xFF
			si += 3
			di += 4
		}
	}
	return dst
}

// Encode writes the view to w as a png, jpeg or bmp image.
func (c *Canvas) Encode(w io.Writer, format string) error {
	img := c.ToRGBA()
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "", "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	}
	return errors.Errorf("unsupported image format %q", format)
}

// Save encodes the view into the named file, choosing the format from the
// file extension.
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create the snapshot file")
	}
	if err := c.Encode(f, filepath.Ext(path)); err != nil {
		f.Close()
		return errors.Wrap(err, "could not encode the snapshot")
	}
	return f.Close()
}
