package mui

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/esimov/mui/utils"
)

// ImageLabel shows a picture scaled to its rectangle.
type ImageLabel struct {
	state
	Color Color
}

// NewImageLabel returns an image label painting dark gray when it has no
// image.
func NewImageLabel() *ImageLabel {
	return &ImageLabel{state: newState(), Color: 0x202020}
}

// Draw paints img into the rectangle at x, y when the status changed. A
// nil or empty image paints the label color instead. Images of another
// size are resampled with a linear filter.
func (l *ImageLabel) Draw(s *Screen, img image.Image, x, y, w, h int) Status {
	roi := Rect(x, y, w, h)
	if !l.update(l.effective(s.Input, roi, Idle, Idle)) {
		return l.status
	}
	area := s.Canvas.Region(roi)
	if img == nil || img.Bounds().Empty() {
		area.Fill(l.Color)
		return l.status
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		img = imaging.Resize(img, w, h, imaging.Linear)
	}
	blit(area, img)
	return l.status
}

// blit copies img, which has the size of area, into area.
func blit(area *Canvas, img image.Image) {
	b := img.Bounds()
	w, h := utils.Min(area.Rect.Dx(), b.Dx()), utils.Min(area.Rect.Dy(), b.Dy())
	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			di := area.PixOffset(area.Rect.Min.X, area.Rect.Min.Y+y)
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x++ {
				v := src.Pix[si+x]
				area.Pix[di+0], area.Pix[di+1], area.Pix[di+2] = v, v, v
				di += 3
			}
		}
	case *image.NRGBA:
		copyRGBA(area, src.Pix, src.Stride, src.PixOffset(b.Min.X, b.Min.Y), w, h)
	case *image.RGBA:
		copyRGBA(area, src.Pix, src.Stride, src.PixOffset(b.Min.X, b.Min.Y), w, h)
	case *Canvas:
		for y := 0; y < h; y++ {
			di := area.PixOffset(area.Rect.Min.X, area.Rect.Min.Y+y)
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(area.Pix[di:di+3*w], src.Pix[si:si+3*w])
		}
	default:
		draw.Draw(area, area.Rect, img, b.Min, draw.Src)
	}
}

// copyRGBA copies 4 channel R, G, B, A rows into area, dropping alpha.
func copyRGBA(area *Canvas, pix []uint8, stride, off, w, h int) {
	for y := 0; y < h; y++ {
		di := area.PixOffset(area.Rect.Min.X, area.Rect.Min.Y+y)
		si := off + y*stride
		for x := 0; x < w; x++ {
			area.Pix[di+0] = pix[si+2]
			area.Pix[di+1] = pix[si+1]
			area.Pix[di+2] = pix[si+0]
			di += 3
			si += 4
		}
	}
}
