package labelcolor

import (
	"fmt"
	"math"
	"strings"
)

// HashColormap maps positions to colors with a trigonometric hash instead of
// a precomputed table, so labels of unbounded range get a color without ever
// enumerating them. It is the CPU twin of a fragment-shader lookup; GLSL
// returns the shader equivalent for consumers that color labels on the GPU.
type HashColormap struct {
	// Seed scales the hash frequencies. Different seeds give different but
	// equally reproducible palettes.
	Seed float64
}

// NewHashColormap creates a hash colormap. With no arguments the seed is
// DefaultSeed; multiple values are summed into a single seed, matching the
// shader's single uniform (a 3-seed collapses to its sum).
func NewHashColormap(seed ...float64) HashColormap {
	if len(seed) == 0 {
		return HashColormap{Seed: DefaultSeed}
	}
	var sum float64
	for _, s := range seed {
		sum += s
	}
	return HashColormap{Seed: sum}
}

// Map returns the color at position t. The output is opaque and every
// channel lies in [0, 1).
func (m HashColormap) Map(t float64) RGBA {
	return RGBA{
		R: fract(math.Sin(1 + 971*t*m.Seed)),
		G: fract(math.Tan(1 + 829*t*m.Seed)),
		B: fract(math.Cos(1 + 419*t*m.Seed)),
		A: 1,
	}
}

// MapAll returns the color at every position in ts, in order.
func (m HashColormap) MapAll(ts []float64) []RGBA {
	out := make([]RGBA, len(ts))
	for i, t := range ts {
		out[i] = m.Map(t)
	}
	return out
}

const glslHashMap = `vec4 hash_color(float t) {
    float r = fract(sin(1.0 + (971.0 * t * $seed)));
    float g = fract(tan(1.0 + (829.0 * t * $seed)));
    float b = fract(cos(1.0 + (419.0 * t * $seed)));
    return vec4(r, g, b, 1.0);
}
`

// GLSL returns a shader function computing the same mapping as Map, with the
// seed substituted as a literal.
func (m HashColormap) GLSL() string {
	return strings.ReplaceAll(glslHashMap, "$seed", fmt.Sprintf("%.3f", m.Seed))
}
