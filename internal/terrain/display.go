package terrain

import "image/color"

var tilePalette = buildTilePalette()

func buildTilePalette() [len(TileTypes)]color.RGBA {
	var palette [len(TileTypes)]color.RGBA
	for i := range palette {
		palette[i] = paletteColorFor(TileType(i))
	}
	return palette
}

func paletteColorFor(t TileType) color.RGBA {
	switch t {
	case Stone:
		return color.RGBA{R: 100, G: 100, B: 100, A: 255}
	case Water:
		return color.RGBA{R: 0, G: 0, B: 225, A: 255}
	case Wood:
		return color.RGBA{R: 0, G: 125, B: 0, A: 255}
	case Sand:
		return color.RGBA{R: 246, G: 215, B: 176, A: 255}
	case Marked:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case Grass:
		fallthrough
	default:
		return color.RGBA{R: 0, G: 225, B: 0, A: 255}
	}
}

// Palette returns a copy of the tile color table indexed by TileType.
func Palette() [len(TileTypes)]color.RGBA {
	return tilePalette
}

// Color returns the paint color of a tile type. Unknown values paint as Grass.
func Color(t TileType) color.RGBA {
	if int(t) < len(tilePalette) {
		return tilePalette[t]
	}
	return tilePalette[Grass]
}
