package ui

import (
	"math"
	"strconv"

	"tileworld/internal/core"
)

// control is the HUD state of one adjustable parameter.
type control struct {
	core.ParameterControl
	value float64
	known bool
}

func newControls(src any) []control {
	p, ok := src.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	defs := p.ParameterControls()
	out := make([]control, len(defs))
	for i, d := range defs {
		out[i] = control{ParameterControl: d}
	}
	return out
}

// refresh reads the current value of every control from snap.
func refresh(controls []control, snap core.ParameterSnapshot) {
	for i := range controls {
		c := &controls[i]
		c.known = false
		p, ok := snap.Lookup(c.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		c.value, c.known = v, true
	}
}

func (c control) step() float64 {
	switch {
	case c.Step > 0 && c.Type == core.ParamTypeInt:
		return math.Max(1, math.Round(c.Step))
	case c.Step > 0:
		return c.Step
	case c.Type == core.ParamTypeInt:
		return 1
	}
	return 0.05
}

// next returns the value one step in direction dir, clamped to the control
// bounds. ok is false when the value cannot move that way.
func (c control) next(dir int) (float64, bool) {
	if !c.known || dir == 0 {
		return c.value, false
	}
	v := c.value + float64(dir)*c.step()
	if c.HasMin {
		v = math.Max(v, c.Min)
	}
	if c.HasMax {
		v = math.Min(v, c.Max)
	}
	if c.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	return v, math.Abs(v-c.value) > 1e-9
}

// apply sends v to the matching setter on src.
func (c control) apply(src any, v float64) bool {
	switch c.Type {
	case core.ParamTypeInt:
		s, ok := src.(core.IntParameterSetter)
		return ok && s.SetIntParameter(c.Key, int(v))
	case core.ParamTypeFloat:
		s, ok := src.(core.FloatParameterSetter)
		return ok && s.SetFloatParameter(c.Key, v)
	}
	return false
}

func (c control) format() string {
	if !c.known {
		return "--"
	}
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(c.value))
	}
	prec := 1
	switch s := c.step(); {
	case s < 0.001:
		prec = 4
	case s < 0.01:
		prec = 3
	case s < 0.1:
		prec = 2
	}
	return strconv.FormatFloat(c.value, 'f', prec, 64)
}
