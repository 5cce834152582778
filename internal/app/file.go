package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"tileworld/internal/core"
)

const configSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "seed":            {"type": "integer"},
    "rows":            {"type": "integer", "minimum": 1},
    "columns":         {"type": "integer", "minimum": 1},
    "initial_columns": {"type": "integer", "minimum": 0},
    "grow_batch":      {"type": "integer", "minimum": 1},
    "noise_scale":     {"type": "number", "exclusiveMinimum": 0},
    "tile_size":       {"type": "number", "exclusiveMinimum": 0},
    "width":           {"type": "integer", "minimum": 1},
    "height":          {"type": "integer", "minimum": 1},
    "zoom":            {"type": "number", "minimum": 0.4, "maximum": 10},
    "pan_speed":       {"type": "number", "minimum": 0},
    "tps":             {"type": "integer", "minimum": 1},
    "hud_width":       {"type": "integer", "minimum": 0},
    "verbose":         {"type": "boolean"}
  }
}`

var configSchema = jsonschema.MustCompileString("tileworld-config.schema.json", configSchemaJSON)

// fileConfig mirrors Config for YAML decoding. Pointers distinguish absent
// keys from zero values.
type fileConfig struct {
	Seed           *int64   `yaml:"seed"`
	Rows           *int     `yaml:"rows"`
	Columns        *int     `yaml:"columns"`
	InitialColumns *int     `yaml:"initial_columns"`
	GrowBatch      *int     `yaml:"grow_batch"`
	NoiseScale     *float64 `yaml:"noise_scale"`
	TileSize       *float64 `yaml:"tile_size"`
	Width          *int     `yaml:"width"`
	Height         *int     `yaml:"height"`
	Zoom           *float64 `yaml:"zoom"`
	PanSpeed       *float64 `yaml:"pan_speed"`
	TPS            *int     `yaml:"tps"`
	HUDWidth       *int     `yaml:"hud_width"`
	Verbose        *bool    `yaml:"verbose"`
}

// ApplyFile loads a YAML world file and copies its values into c, skipping
// options whose flag name is in explicit.
func (c *Config) ApplyFile(path string, explicit map[string]bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.applyYAML(path, raw, explicit)
}

func (c *Config) applyYAML(name string, raw []byte, explicit map[string]bool) error {
	if err := validateDocument(raw); err != nil {
		return fmt.Errorf("%s: %v: %w", name, err, core.ErrConfiguration)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("%s: %v: %w", name, err, core.ErrConfiguration)
	}

	setValue(&c.Seed, fc.Seed, explicit["seed"])
	setValue(&c.Rows, fc.Rows, explicit["rows"])
	setValue(&c.Columns, fc.Columns, explicit["columns"])
	setValue(&c.InitialColumns, fc.InitialColumns, explicit["initial-columns"])
	setValue(&c.GrowBatch, fc.GrowBatch, explicit["grow-batch"])
	setValue(&c.NoiseScale, fc.NoiseScale, explicit["noise-scale"])
	setValue(&c.TileSize, fc.TileSize, explicit["tile-size"])
	setValue(&c.Width, fc.Width, explicit["width"])
	setValue(&c.Height, fc.Height, explicit["height"])
	setValue(&c.Zoom, fc.Zoom, explicit["zoom"])
	setValue(&c.PanSpeed, fc.PanSpeed, explicit["pan-speed"])
	setValue(&c.TPS, fc.TPS, explicit["tps"])
	setValue(&c.HUDWidth, fc.HUDWidth, explicit["hud-width"])
	setValue(&c.Verbose, fc.Verbose, explicit["v"])
	return nil
}

// validateDocument checks the YAML document against the config schema. The
// document is round-tripped through JSON so the validator sees JSON types.
func validateDocument(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(js, &v); err != nil {
		return err
	}
	return configSchema.Validate(v)
}

func setValue[T any](dst *T, v *T, skip bool) {
	if v == nil || skip {
		return
	}
	*dst = *v
}
