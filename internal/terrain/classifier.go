package terrain

import (
	"fmt"
	"strconv"

	"tileworld/internal/core"
	"tileworld/internal/noise"
)

// Thresholds of the classification ladder.
const (
	StoneBelow = 0.30
	SandBelow  = 0.42
	WaterAbove = 0.40
	WoodBelow  = 0.30

	// Frequency multipliers applied to the base scale for the water and
	// wood layers.
	WaterFrequency = 0.2
	WoodFrequency  = 0.8
)

// Config holds the terrain generation parameters.
type Config struct {
	// Scale is the base noise frequency applied to tile coordinates.
	Scale float64
}

// DefaultConfig returns the standard terrain configuration.
func DefaultConfig() Config {
	return Config{Scale: 0.05}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or non-positive values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	return c
}

// Validate reports whether the configuration can drive a classifier.
func (c Config) Validate() error {
	if !(c.Scale > 0) {
		return fmt.Errorf("noise scale %v must be positive: %w", c.Scale, core.ErrConfiguration)
	}
	return nil
}

// Layers holds the three noise samples taken at one point.
type Layers struct {
	Base  float64
	Water float64
	Wood  float64
}

// Classifier maps tile coordinates to tile types.
type Classifier struct {
	noise noise.Sampler
	scale float64
}

// NewClassifier returns a classifier sampling src with the configured scale.
func NewClassifier(src noise.Sampler, cfg Config) (*Classifier, error) {
	if src == nil {
		return nil, fmt.Errorf("terrain: nil noise sampler: %w", core.ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	return &Classifier{noise: src, scale: cfg.Scale}, nil
}

// Scale returns the base noise scale.
func (c *Classifier) Scale() float64 { return c.scale }

// Sample returns the three noise layers at tile (x, y).
func (c *Classifier) Sample(x, y int) Layers {
	fx, fy := float64(x), float64(y)
	s := c.scale
	return Layers{
		Base:  c.noise.Sample(fx*s, fy*s),
		Water: c.noise.Sample(fx*s*WaterFrequency, fy*s*WaterFrequency),
		Wood:  c.noise.Sample(fx*s*WoodFrequency, fy*s*WoodFrequency),
	}
}

// Classify returns the generated tile type at (x, y).
func (c *Classifier) Classify(x, y int) TileType {
	return ClassifyLayers(c.Sample(x, y))
}

// Rule is one step of the classification ladder. It returns the tile type
// that replaces current, or ok=false when it does not fire.
type Rule struct {
	Name  string
	Apply func(l Layers, current TileType) (next TileType, ok bool)
}

// Ladder is the ordered list of overrides applied on top of Grass. Each rule
// may overwrite the result of the rules before it:
//
//  1. base < 0.30 -> Stone
//  2. water < 0.42 -> Sand
//  3. water > 0.40 -> Water
//  4. wood < 0.30 and still Grass -> Wood
//
// The sand and water rules overlap on (0.40, 0.42); the water rule runs last
// so Water wins there.
var Ladder = []Rule{
	{Name: "stone", Apply: func(l Layers, _ TileType) (TileType, bool) {
		return Stone, l.Base < StoneBelow
	}},
	{Name: "sand", Apply: func(l Layers, _ TileType) (TileType, bool) {
		return Sand, l.Water < SandBelow
	}},
	{Name: "water", Apply: func(l Layers, _ TileType) (TileType, bool) {
		return Water, l.Water > WaterAbove
	}},
	{Name: "wood", Apply: func(l Layers, cur TileType) (TileType, bool) {
		return Wood, l.Wood < WoodBelow && cur == Grass
	}},
}

// ClassifyLayers runs the full ladder over a set of samples.
func ClassifyLayers(l Layers) TileType {
	return applyRules(Ladder, l)
}

func applyRules(rules []Rule, l Layers) TileType {
	t := Grass
	for _, r := range rules {
		if next, ok := r.Apply(l, t); ok {
			t = next
		}
	}
	return t
}
