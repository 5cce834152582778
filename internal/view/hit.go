package view

import (
	"math"

	"tileworld/internal/world"
)

// GridCoord converts a pointer position in display pixels to the grid
// coordinate under it.
func GridCoord(pointerX, pointerY float64, cam Camera) (int, int) {
	tw, th := cam.TileW(), cam.TileH()
	if tw <= 0 || th <= 0 {
		return math.MinInt, math.MinInt
	}
	r := cam.ratio()
	gx := math.Floor(pointerX/r/tw - cam.XOffset)
	gy := math.Floor(pointerY/r/th - cam.YOffset)
	return int(gx), int(gy)
}

// HitTest returns the visible node under the pointer. A miss is reported
// with ok=false and is not an error.
func HitTest(v CulledView, pointerX, pointerY float64, cam Camera) (*world.Node, bool) {
	gx, gy := GridCoord(pointerX, pointerY, cam)
	for _, col := range v.Columns {
		if col.X != gx {
			continue
		}
		for _, n := range col.Nodes {
			if n.Y == gy {
				return n, true
			}
		}
		return nil, false
	}
	return nil, false
}
