package session

import (
	"fmt"
	"log"

	"tileworld/internal/core"
	"tileworld/internal/noise"
	"tileworld/internal/terrain"
	"tileworld/internal/view"
)

// Config controls world size, camera defaults and input response.
type Config struct {
	Seed    int64
	Terrain terrain.Config

	Rows    int
	Columns int
	// InitialColumns of zero derives the block from the viewport width.
	InitialColumns int
	// GrowBatch caps the columns appended per tick.
	GrowBatch int

	Viewport   core.Size
	TileSize   float64
	Scale      float64
	PixelRatio float64
	// PanSpeed is in screen tiles per second; the world moves at the same
	// on-screen speed at every zoom level.
	PanSpeed float64

	Logger  *log.Logger
	Verbose bool

	// Sampler replaces the seeded noise field when set. Seed then only
	// labels the world and Reseed does not change it.
	Sampler noise.Sampler
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{
		Seed:      42,
		Terrain:   terrain.DefaultConfig(),
		Rows:      500,
		Columns:   100000,
		GrowBatch: 16,
		Viewport:  core.Size{W: 960, H: 640},
		TileSize:  8,
		Scale:     1,
		PanSpeed:  60,
	}
}

// Validate reports configuration errors before any world is generated.
func (c Config) Validate() error {
	if err := c.Terrain.Validate(); err != nil {
		return err
	}
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("rows %d must be positive: %w", c.Rows, core.ErrConfiguration)
	case c.Columns <= 0:
		return fmt.Errorf("columns %d must be positive: %w", c.Columns, core.ErrConfiguration)
	case c.InitialColumns < 0:
		return fmt.Errorf("initial columns %d must not be negative: %w", c.InitialColumns, core.ErrConfiguration)
	case c.InitialColumns > c.Columns:
		return fmt.Errorf("initial columns %d exceed columns %d: %w", c.InitialColumns, c.Columns, core.ErrConfiguration)
	case c.GrowBatch <= 0:
		return fmt.Errorf("grow batch %d must be positive: %w", c.GrowBatch, core.ErrConfiguration)
	case c.Viewport.Empty():
		return fmt.Errorf("viewport %dx%d must be positive: %w", c.Viewport.W, c.Viewport.H, core.ErrConfiguration)
	case !(c.TileSize > 0):
		return fmt.Errorf("tile size %v must be positive: %w", c.TileSize, core.ErrConfiguration)
	case c.Scale < view.MinScale || c.Scale > view.MaxScale:
		return fmt.Errorf("zoom %v outside [%v, %v]: %w", c.Scale, view.MinScale, view.MaxScale, core.ErrConfiguration)
	case c.PanSpeed < 0:
		return fmt.Errorf("pan speed %v must not be negative: %w", c.PanSpeed, core.ErrConfiguration)
	}
	return nil
}

// initialColumns returns the width of the first generated block: enough to
// cover the viewport plus one tile of margin.
func (c Config) initialColumns() int {
	if c.InitialColumns > 0 {
		return c.InitialColumns
	}
	tw := c.TileSize * c.Scale
	n := int(float64(c.Viewport.W)/tw) + 2
	return max(1, min(n, c.Columns))
}
