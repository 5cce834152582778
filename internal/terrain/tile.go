// Package terrain turns noise samples into tile types and owns the tile color
// table.
package terrain

// TileType enumerates the closed set of tiles a world node can hold.
type TileType uint8

const (
	Grass TileType = iota
	Stone
	Wood
	Water
	Sand
	// Marked is only ever set by an explicit edit; classification never
	// produces it.
	Marked
)

// TileTypes lists every tile type in declaration order.
var TileTypes = [...]TileType{Grass, Stone, Wood, Water, Sand, Marked}

var tileNames = [...]string{
	Grass:  "grass",
	Stone:  "stone",
	Wood:   "wood",
	Water:  "water",
	Sand:   "sand",
	Marked: "marked",
}

// String returns the lower-case tile name.
func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "unknown"
}
