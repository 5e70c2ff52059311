package life

import (
	"github.com/aquilax/go-perlin"

	"life-canvas/pkg/core"
)

const (
	soupAlpha  = 2.0
	soupBeta   = 2.0
	soupOctave = 3
	soupScale  = 8.0
	soupJitter = 0.5
)

// Soup returns a deterministic pseudo-random pattern covering area. Cells
// cluster into blobs following a perlin field; density in [0, 1] controls how
// much of the area ends up alive.
func Soup(area core.Rect, seed int64, density float64) []core.Cell {
	if area.Empty() {
		return nil
	}
	density = min(max(density, 0), 1)
	if density == 0 {
		return nil
	}

	rng := core.NewRNG(seed)
	noise := perlin.NewPerlin(soupAlpha, soupBeta, soupOctave, rng.Int63())

	// Noise plus jitter spans roughly [-1, 1.5); map density onto that range.
	threshold := 1.5 - density*2.5

	var out []core.Cell
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		for x := area.Min.X; x <= area.Max.X; x++ {
			v := noise.Noise2D(float64(x)/soupScale, float64(y)/soupScale)
			v += rng.Float64() * soupJitter
			if v > threshold {
				out = append(out, core.Cell{X: x, Y: y})
			}
		}
	}
	return out
}
