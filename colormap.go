package labelcolor

import (
	"fmt"
	"sort"
)

// Colormap is an immutable mapping from positions in [0, 1] to colors,
// defined by ordered control points with zero-order-hold interpolation: a
// position takes the color of the nearest control point at or below it, with
// no blending. That guarantees every label maps to an exact, previously
// generated color instead of a gradient artifact.
type Colormap struct {
	controls []float64
	colors   []RGBA
}

// NewColormap constructs a colormap from parallel colors and control points.
// Control points must be sorted ascending and lie in [0, 1]; the two slices
// must have equal nonzero length. The inputs are copied, so the colormap
// stays immutable even if the caller later mutates its slices.
func NewColormap(colors []RGBA, controls []float64) (*Colormap, error) {
	if len(colors) == 0 || len(colors) != len(controls) {
		return nil, fmt.Errorf("%w: %d colors vs %d control points",
			ErrShapeMismatch, len(colors), len(controls))
	}
	for i, c := range controls {
		if c < 0 || c > 1 {
			return nil, fmt.Errorf("%w: control point %d = %g outside [0, 1]",
				ErrShapeMismatch, i, c)
		}
		if i > 0 && c < controls[i-1] {
			return nil, fmt.Errorf("%w: control points not sorted at index %d",
				ErrShapeMismatch, i)
		}
	}
	m := &Colormap{
		controls: make([]float64, len(controls)),
		colors:   make([]RGBA, len(colors)),
	}
	copy(m.controls, controls)
	copy(m.colors, colors)
	return m, nil
}

// Controls returns a copy of the control points.
func (m *Colormap) Controls() []float64 {
	out := make([]float64, len(m.controls))
	copy(out, m.controls)
	return out
}

// Colors returns a copy of the colors.
func (m *Colormap) Colors() []RGBA {
	out := make([]RGBA, len(m.colors))
	copy(out, m.colors)
	return out
}

// Len returns the number of control points.
func (m *Colormap) Len() int {
	return len(m.controls)
}

// Map returns the color at position t. Positions outside [0, 1] are clamped.
func (m *Colormap) Map(t float64) RGBA {
	if len(m.controls) == 0 {
		return Transparent
	}
	t = clamp01(t)
	// First control point strictly above t; the color belongs to the one
	// before it (zero-order hold).
	idx := sort.Search(len(m.controls), func(i int) bool {
		return m.controls[i] > t
	})
	if idx == 0 {
		return m.colors[0]
	}
	return m.colors[idx-1]
}

// MapAll returns the color at every position in ts, in order.
func (m *Colormap) MapAll(ts []float64) []RGBA {
	out := make([]RGBA, len(ts))
	for i, t := range ts {
		out[i] = m.Map(t)
	}
	return out
}

// Table samples the colormap at n evenly spaced positions spanning [0, 1] and
// quantizes each color to 8-bit RGBA, the layout color-table renderers and
// texture uploads expect.
func (m *Colormap) Table(n int) [][4]uint8 {
	out := make([][4]uint8, n)
	for i := range out {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := m.Map(t)
		out[i] = [4]uint8{quant8(c.R), quant8(c.G), quant8(c.B), quant8(c.A)}
	}
	return out
}

// quant8 clamps a component to [0, 1] and converts to uint8 with rounding.
func quant8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// LabelColormap builds a colormap suitable for a categorical label image:
// numColors quasi-random colors sampled from Lab space (alpha 1), on evenly
// spaced control points 0, ..., 1, with the color at control point 0 forced
// to fully transparent so that background labels render as nothing.
//
// numColors must be at least 2. seed is optional: none means DefaultSeed, one
// value is broadcast, three values seed the dimensions independently.
// Rebuilding with identical arguments yields a bit-identical colormap.
func LabelColormap(numColors int, seed ...float64) (*Colormap, error) {
	if numColors < 2 {
		return nil, fmt.Errorf("%w: numColors=%d (need at least 2 control points)",
			ErrShapeMismatch, numColors)
	}
	rgb, err := RandomColors(numColors, WithSeed(seed...))
	if err != nil {
		return nil, err
	}
	colors := make([]RGBA, numColors)
	controls := make([]float64, numColors)
	for i, c := range rgb {
		colors[i] = RGBA{R: c[0], G: c[1], B: c[2], A: 1}
		controls[i] = float64(i) / float64(numColors-1)
	}
	colors[0] = Transparent // label 0 always renders fully transparent
	return NewColormap(colors, controls)
}
