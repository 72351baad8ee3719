package mui

import (
	"image"
	"image/draw"
	"math"

	"github.com/esimov/mui/utils"
	"golang.org/x/image/vector"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// fillRect paints r, in absolute canvas coordinates, with c.
func fillRect(dst *Canvas, r image.Rectangle, c Color) {
	dst.SubImage(r).Fill(c)
}

// strokeRect draws the outline of r with the given thickness, inside r.
func strokeRect(dst *Canvas, r image.Rectangle, c Color, size int) {
	if size <= 0 || r.Empty() {
		return
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+size), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-size, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+size, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-size, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// rasterize runs path on a rasterizer covering dst and composes the
// resulting coverage mask over dst in color c. path receives the offset
// that maps canvas coordinates into rasterizer space.
func rasterize(dst *Canvas, c Color, path func(z *vector.Rasterizer, ox, oy float32)) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	path(z, float32(-b.Min.X), float32(-b.Min.Y))

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// circlePath appends a full circle; reverse flips the winding so it can
// cut a hole into an enclosing circle.
func circlePath(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	if !reverse {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}

// fillCircle draws an anti-aliased disc centered at center.
func fillCircle(dst *Canvas, center image.Point, radius int, c Color) {
	if radius <= 0 {
		return
	}
	rasterize(dst, c, func(z *vector.Rasterizer, ox, oy float32) {
		circlePath(z, float32(center.X)+ox+0.5, float32(center.Y)+oy+0.5, float32(radius), false)
	})
}

// strokeCircle draws an anti-aliased ring of the given thickness whose
// middle line has the given radius.
func strokeCircle(dst *Canvas, center image.Point, radius int, c Color, size int) {
	if radius <= 0 || size <= 0 {
		return
	}
	half := float32(size) / 2
	rasterize(dst, c, func(z *vector.Rasterizer, ox, oy float32) {
		cx, cy := float32(center.X)+ox+0.5, float32(center.Y)+oy+0.5
		circlePath(z, cx, cy, float32(radius)+half, false)
		if inner := float32(radius) - half; inner > 0 {
			circlePath(z, cx, cy, inner, true)
		}
	})
}

// drawLine draws an anti-aliased segment from a to b.
func drawLine(dst *Canvas, a, b image.Point, c Color, size int) {
	if size <= 0 {
		return
	}
	if utils.Abs(b.X-a.X)+utils.Abs(b.Y-a.Y) == 0 {
		fillCircle(dst, a, utils.Max(size/2, 1), c)
		return
	}
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	length := math.Hypot(dx, dy)
	// unit normal scaled to half the thickness
	nx := float32(-dy / length * float64(size) / 2)
	ny := float32(dx / length * float64(size) / 2)

	rasterize(dst, c, func(z *vector.Rasterizer, ox, oy float32) {
		ax, ay := float32(a.X)+ox+0.5, float32(a.Y)+oy+0.5
		bx, by := float32(b.X)+ox+0.5, float32(b.Y)+oy+0.5
		z.MoveTo(ax+nx, ay+ny)
		z.LineTo(bx+nx, by+ny)
		z.LineTo(bx-nx, by-ny)
		z.LineTo(ax-nx, ay-ny)
		z.ClosePath()
	})
}
