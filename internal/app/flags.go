package app

import (
	"flag"
	"fmt"

	"tileworld/internal/core"
	"tileworld/internal/session"
	"tileworld/internal/terrain"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string

	Seed           int64
	Rows           int
	Columns        int
	InitialColumns int
	GrowBatch      int
	NoiseScale     float64

	TileSize float64
	Width    int
	Height   int
	Zoom     float64
	PanSpeed float64
	TPS      int
	HUDWidth int

	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := session.DefaultConfig()
	return &Config{
		Seed:       d.Seed,
		Rows:       d.Rows,
		Columns:    d.Columns,
		GrowBatch:  d.GrowBatch,
		NoiseScale: d.Terrain.Scale,
		TileSize:   d.TileSize,
		Width:      d.Viewport.W,
		Height:     d.Viewport.H,
		Zoom:       d.Scale,
		PanSpeed:   d.PanSpeed,
		TPS:        60,
		HUDWidth:   220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML world file; flags given explicitly override it")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed of the world")
	fs.IntVar(&c.Rows, "rows", c.Rows, "highest row index (columns hold rows+1 tiles)")
	fs.IntVar(&c.Columns, "columns", c.Columns, "maximum world width in columns")
	fs.IntVar(&c.InitialColumns, "initial-columns", c.InitialColumns, "columns generated at startup (0 = fit the viewport)")
	fs.IntVar(&c.GrowBatch, "grow-batch", c.GrowBatch, "columns appended per growth step")
	fs.Float64Var(&c.NoiseScale, "noise-scale", c.NoiseScale, "base noise frequency")
	fs.Float64Var(&c.TileSize, "tile-size", c.TileSize, "tile size in pixels at zoom 1")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "initial zoom (0.4-10)")
	fs.Float64Var(&c.PanSpeed, "pan-speed", c.PanSpeed, "pan speed in screen tiles per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log world generation and growth")
}

// Parse binds c to fs, parses args and, when -config is given, fills every
// option not set on the command line from the YAML file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath != "" {
		explicit := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if err := c.ApplyFile(c.ConfigPath, explicit); err != nil {
			return err
		}
	}
	return c.Validate()
}

// Validate reports option values that cannot start a world.
func (c *Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive: %w", c.TPS, core.ErrConfiguration)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width %d must not be negative: %w", c.HUDWidth, core.ErrConfiguration)
	}
	return c.Session().Validate()
}

// Session converts the options into a session configuration.
func (c *Config) Session() session.Config {
	sc := session.DefaultConfig()
	sc.Seed = c.Seed
	sc.Terrain = terrain.Config{Scale: c.NoiseScale}
	sc.Rows = c.Rows
	sc.Columns = c.Columns
	sc.InitialColumns = c.InitialColumns
	sc.GrowBatch = c.GrowBatch
	sc.Viewport = core.Size{W: c.Width, H: c.Height}
	sc.TileSize = c.TileSize
	sc.Scale = c.Zoom
	sc.PanSpeed = c.PanSpeed
	sc.Verbose = c.Verbose
	return sc
}
