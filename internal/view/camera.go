// Package view turns the world grid into what one frame needs: the culled
// set of visible nodes, the batched paint rectangles and the hovered node.
package view

import (
	"math"

	"tileworld/internal/core"
)

// Zoom limits and wheel step.
const (
	MinScale  = 0.4
	MaxScale  = 10.0
	ScaleStep = 0.2
)

// Camera is the pan/zoom state used to project tiles to screen pixels.
// Offsets are in tile units; a positive XOffset moves the world right.
type Camera struct {
	XOffset float64
	YOffset float64
	Scale   float64

	Viewport core.Size

	TileWidth  float64
	TileHeight float64

	// PixelRatio is display pixels per backing-buffer pixel. Zero means 1.
	PixelRatio float64
}

// TileW returns the on-screen width of one tile at the current zoom.
func (c Camera) TileW() float64 { return c.TileWidth * c.zoom() }

// TileH returns the on-screen height of one tile at the current zoom.
func (c Camera) TileH() float64 { return c.TileHeight * c.zoom() }

// ScreenX returns the screen x of the left edge of column x.
func (c Camera) ScreenX(x int) float64 {
	tw := c.TileW()
	return float64(x)*tw + c.XOffset*tw
}

// ScreenY returns the screen y of the top edge of row y.
func (c Camera) ScreenY(y int) float64 {
	th := c.TileH()
	return float64(y)*th + c.YOffset*th
}

// VisibleRight returns the first column index past the right edge of the
// viewport.
func (c Camera) VisibleRight() int {
	tw := c.TileW()
	if tw <= 0 {
		return 0
	}
	return int(math.Ceil(float64(c.Viewport.W)/tw - c.XOffset))
}

// Zoom returns a copy of the camera zoomed by steps wheel ticks. The scale is
// rounded to one decimal and clamped to [MinScale, MaxScale].
func (c Camera) Zoom(steps int) Camera {
	s := c.zoom() + float64(steps)*ScaleStep
	s = math.Round(s*10) / 10
	c.Scale = math.Min(MaxScale, math.Max(MinScale, s))
	return c
}

func (c Camera) zoom() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}

func (c Camera) ratio() float64 {
	if c.PixelRatio <= 0 {
		return 1
	}
	return c.PixelRatio
}

// overlaps is the axis-aligned interval test used for both axes.
func overlaps(a0, aLen, b0, bLen float64) bool {
	return a0 < b0+bLen && a0+aLen > b0
}
