// Package render hands batched rectangles to a drawing surface.
package render

import (
	"image"
	"image/color"
	"math"

	"tileworld/internal/view"
)

// Sink is a drawing surface that accepts clear and filled-rectangle commands.
type Sink interface {
	Clear()
	FillRect(x, y, w, h float64, c color.RGBA)
}

// Paint clears the sink and fills every rectangle with its tile color.
func Paint(dst Sink, rects []view.RenderRect) {
	dst.Clear()
	for _, r := range rects {
		dst.FillRect(r.X, r.Y, r.Width, r.Height, r.Color())
	}
}

// Snap rounds both edges of a rectangle to whole pixels. Rectangles that
// share an edge before snapping still share it afterwards, so neighbouring
// columns at fractional tile sizes neither overlap nor leave a gap.
func Snap(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
}

// Canvas is an in-memory RGBA Sink, used by headless tools and tests.
type Canvas struct {
	w, h int
	buf  []byte
	bg   color.RGBA
}

// NewCanvas allocates a canvas of w*h pixels cleared to bg.
func NewCanvas(w, h int, bg color.RGBA) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h, buf: make([]byte, 4*w*h), bg: bg}
	c.Clear()
	return c
}

// Clear fills the whole canvas with the background color.
func (c *Canvas) Clear() {
	fillRGBA(c.buf, c.bg)
}

// FillRect paints the snapped rectangle, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	r := Snap(x, y, w, h)
	x0 := clampInt(r.Min.X, 0, c.w)
	y0 := clampInt(r.Min.Y, 0, c.h)
	x1 := clampInt(r.Max.X, 0, c.w)
	y1 := clampInt(r.Max.Y, 0, c.h)
	for py := y0; py < y1; py++ {
		row := py * c.w * 4
		fillRGBA(c.buf[row+x0*4:row+x1*4], col)
	}
}

// At returns the color of pixel (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	i := (y*c.w + x) * 4
	return color.RGBA{R: c.buf[i], G: c.buf[i+1], B: c.buf[i+2], A: c.buf[i+3]}
}

// Image wraps the backing buffer as an image.RGBA without copying.
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{Pix: c.buf, Stride: 4 * c.w, Rect: image.Rect(0, 0, c.w, c.h)}
}

func fillRGBA(buf []byte, col color.RGBA) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = col.R
		buf[i+1] = col.G
		buf[i+2] = col.B
		buf[i+3] = col.A
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
