// Package coverage rasterizes filled paths into an alpha mask. It is a
// verification sink: tests stroke a path into a Canvas and measure the
// covered area instead of comparing coordinates.
package coverage

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/stroker/path"
)

// Canvas is a path.Consumer that fills every path it receives into an
// *image.Alpha. Paths accumulate; each EndPath composites the path over the
// previous ones.
type Canvas struct {
	ras *vector.Rasterizer
	img *image.Alpha
}

// New returns an empty w×h canvas.
func New(w, h int) *Canvas {
	return &Canvas{
		ras: vector.NewRasterizer(w, h),
		img: image.NewAlpha(image.Rect(0, 0, w, h)),
	}
}

// Image returns the accumulated mask.
func (c *Canvas) Image() *image.Alpha { return c.img }

// Coverage returns the covered area in pixels, counting partial coverage.
func (c *Canvas) Coverage() float64 {
	var sum int
	for _, a := range c.img.Pix {
		sum += int(a)
	}
	return float64(sum) / 255
}

// Clear erases the mask.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) BeginPath() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) MoveTo(x, y float64) { c.ras.MoveTo(float32(x), float32(y)) }
func (c *Canvas) LineTo(x, y float64) { c.ras.LineTo(float32(x), float32(y)) }

func (c *Canvas) QuadTo(cx, cy, x, y float64) {
	c.ras.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}

func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.ras.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

func (c *Canvas) ClosePath() { c.ras.ClosePath() }

func (c *Canvas) EndPath() {
	c.ras.Draw(c.img, c.img.Bounds(), image.Opaque, image.Point{})
}

var _ path.Consumer = (*Canvas)(nil)
