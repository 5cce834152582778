package ui

import (
	"image/color"

	"tileworld/internal/session"
	"tileworld/internal/terrain"
)

// LegendRow is one tile type in the HUD legend.
type LegendRow struct {
	Type  terrain.TileType
	Color color.RGBA
	Count int
	// Share is the fraction of visible tiles of this type.
	Share float64
}

// Legend builds one row per tile type from the last frame's statistics.
func Legend(st session.Stats) []LegendRow {
	palette := terrain.Palette()
	rows := make([]LegendRow, len(terrain.TileTypes))
	for i, t := range terrain.TileTypes {
		rows[i] = LegendRow{Type: t, Color: palette[t], Count: st.TileCounts[t]}
		if st.Tiles > 0 {
			rows[i].Share = float64(st.TileCounts[t]) / float64(st.Tiles)
		}
	}
	return rows
}
