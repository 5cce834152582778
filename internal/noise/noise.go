// Package noise implements the seeded 2D gradient noise that drives terrain
// generation.
package noise

import (
	"math"

	"tileworld/internal/core"
)

// Sampler returns a smooth pseudo-random value in [0, 1] for a continuous
// coordinate.
type Sampler interface {
	Sample(x, y float64) float64
}

// Field is a gradient noise sampler backed by an owned permutation table.
// Two fields built from the same seed return identical samples everywhere.
type Field struct {
	perm [512]uint8
}

// New builds a Field whose permutation table is shuffled from seed.
func New(seed int64) *Field {
	f := &Field{}
	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	core.NewRNG(seed).Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})
	// Duplicated so corner lookups never need to wrap.
	copy(f.perm[:256], base[:])
	copy(f.perm[256:], base[:])
	return f
}

// Sample evaluates the noise at (x, y) and normalizes it to [0, 1].
func (f *Field) Sample(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	X := int(fx) & 255
	Y := int(fy) & 255

	xf := x - fx
	yf := y - fy

	p := &f.perm
	bottomLeft := p[int(p[X])+Y]
	bottomRight := p[int(p[X+1])+Y]
	topLeft := p[int(p[X])+Y+1]
	topRight := p[int(p[X+1])+Y+1]

	u := fade(xf)
	v := fade(yf)

	bottom := lerp(grad(bottomLeft, xf, yf), grad(bottomRight, xf-1, yf), u)
	top := lerp(grad(topLeft, xf, yf-1), grad(topRight, xf-1, yf-1), u)

	n := (lerp(bottom, top, v) + 1) / 2
	// The four-direction gradient set keeps n within range; clamp guards
	// against float rounding at the extremes.
	return math.Min(1, math.Max(0, n))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash uint8, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Constant is a Sampler that returns the same value everywhere.
type Constant float64

// Sample returns the constant value.
func (c Constant) Sample(float64, float64) float64 { return float64(c) }
