package view

import "tileworld/internal/world"

// CulledColumn is the visible part of one grid column. Nodes point into the
// grid and must not be modified through the view.
type CulledColumn struct {
	X     int
	Nodes []*world.Node
}

// CulledView is the per-frame visible subset of the grid in ascending (x, y)
// order, together with the camera it was computed for.
type CulledView struct {
	Camera  Camera
	Columns []CulledColumn
}

// NodeCount returns the number of visible nodes.
func (v CulledView) NodeCount() int {
	n := 0
	for _, c := range v.Columns {
		n += len(c.Nodes)
	}
	return n
}

// Cull scans every generated column and keeps the nodes whose screen
// rectangle overlaps the viewport grown by one tile on every side.
func Cull(g *world.Grid, cam Camera) CulledView {
	view := CulledView{Camera: cam}
	tw, th := cam.TileW(), cam.TileH()
	if tw <= 0 || th <= 0 || cam.Viewport.Empty() {
		return view
	}
	vw, vh := float64(cam.Viewport.W), float64(cam.Viewport.H)

	cols := g.Columns()
	for i := range cols {
		col := &cols[i]
		if !overlaps(cam.ScreenX(col.X), tw, -tw, vw+2*tw) {
			continue
		}
		var nodes []*world.Node
		for j := range col.Nodes {
			n := &col.Nodes[j]
			if !overlaps(cam.ScreenY(n.Y), th, -th, vh+2*th) {
				continue
			}
			nodes = append(nodes, n)
		}
		if len(nodes) == 0 {
			continue
		}
		view.Columns = append(view.Columns, CulledColumn{X: col.X, Nodes: nodes})
	}
	return view
}
