package session

import (
	"fmt"
	"math"
	"strconv"

	"tileworld/internal/core"
	"tileworld/internal/terrain"
	"tileworld/internal/view"
)

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	hovered := "--"
	if s.hovered != nil {
		hovered = fmt.Sprintf("(%d,%d) %s", s.hovered.X, s.hovered.Y, s.hovered.Type)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				int64Param("seed", "Seed", s.cfg.Seed),
				intParam("rows", "Rows", s.grid.Rows()+1),
				intParam("columns", "Columns", s.grid.Width()),
				intParam("max_columns", "Max columns", s.grid.MaxColumns()),
				floatParam("noise_scale", "Noise scale", s.classifier.Scale()),
				intParam("grow_batch", "Grow batch", s.cfg.GrowBatch),
			},
		},
		{
			Name: "Camera",
			Params: []core.Parameter{
				floatParam("zoom", "Zoom", s.camera.Scale),
				floatParam("x_offset", "X offset", round2(s.camera.XOffset)),
				floatParam("y_offset", "Y offset", round2(s.camera.YOffset)),
				floatParam("pan_speed", "Pan speed", s.cfg.PanSpeed),
			},
		},
		{
			Name: "Frame",
			Params: []core.Parameter{
				intParam("visible_tiles", "Visible tiles", s.culled.NodeCount()),
				intParam("rects", "Rects", len(s.rects)),
				textParam("hovered", "Hovered", hovered),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "zoom", Label: "Zoom", Type: core.ParamTypeFloat, Step: view.ScaleStep, Min: view.MinScale, Max: view.MaxScale, HasMin: true, HasMax: true},
		{Key: "pan_speed", Label: "Pan speed", Type: core.ParamTypeFloat, Step: 10, Min: 0, Max: 600, HasMin: true, HasMax: true},
		{Key: "grow_batch", Label: "Grow batch", Type: core.ParamTypeInt, Step: 4, Min: 1, Max: 256, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer control. It reports whether key was
// recognized and the value accepted.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "grow_batch":
		if value <= 0 {
			return false
		}
		s.cfg.GrowBatch = value
		return true
	}
	return false
}

// SetFloatParameter updates a floating point control.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "zoom":
		if value < view.MinScale || value > view.MaxScale {
			return false
		}
		s.camera.Scale = math.Round(value*10) / 10
		s.dirty = true
		return true
	case "pan_speed":
		if value < 0 {
			return false
		}
		s.cfg.PanSpeed = value
		return true
	}
	return false
}

// Stats summarizes the last computed frame.
type Stats struct {
	Columns int
	Tiles   int
	Rects   int
	// TileCounts is indexed by terrain.TileType.
	TileCounts [len(terrain.TileTypes)]int
}

// Compression returns visible tiles per paint rectangle.
func (st Stats) Compression() float64 {
	if st.Rects == 0 {
		return 0
	}
	return float64(st.Tiles) / float64(st.Rects)
}

// Stats returns batching statistics for the most recent frame.
func (s *Session) Stats() Stats {
	st := Stats{Columns: s.grid.Width(), Tiles: s.culled.NodeCount(), Rects: len(s.rects)}
	for _, col := range s.culled.Columns {
		for _, n := range col.Nodes {
			if int(n.Type) < len(st.TileCounts) {
				st.TileCounts[n.Type]++
			}
		}
	}
	return st
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
