package view

import (
	"image/color"

	"tileworld/internal/terrain"
)

// RenderRect is one paint command in screen pixels. It covers the run of
// rows [FirstRow, LastRow] of a single column, all of the same type.
type RenderRect struct {
	X, Y          float64
	Width, Height float64
	Type          terrain.TileType

	Column   int
	FirstRow int
	LastRow  int
}

// Color returns the fill color of the rectangle.
func (r RenderRect) Color() color.RGBA { return terrain.Color(r.Type) }

// Batch compresses the view into one rectangle per maximal vertical run of
// identical tile type. Rectangles never span more than one column.
func Batch(v CulledView) []RenderRect {
	return AppendBatch(nil, v)
}

// AppendBatch is Batch that appends to dst, letting callers reuse a buffer
// across frames.
func AppendBatch(dst []RenderRect, v CulledView) []RenderRect {
	cam := v.Camera
	tw, th := cam.TileW(), cam.TileH()
	for _, col := range v.Columns {
		if len(col.Nodes) == 0 {
			continue
		}
		x := cam.ScreenX(col.X)
		emit := func(first, last int, t terrain.TileType) {
			dst = append(dst, RenderRect{
				X:        x,
				Y:        cam.ScreenY(first),
				Width:    tw,
				Height:   float64(last-first+1) * th,
				Type:     t,
				Column:   col.X,
				FirstRow: first,
				LastRow:  last,
			})
		}

		start := col.Nodes[0]
		runType, first, last := start.Type, start.Y, start.Y
		for _, n := range col.Nodes[1:] {
			if n.Type == runType && n.Y == last+1 {
				last = n.Y
				continue
			}
			emit(first, last, runType)
			runType, first, last = n.Type, n.Y, n.Y
		}
		emit(first, last, runType)
	}
	return dst
}
