package labelcolor

import (
	"errors"
	"fmt"

	"github.com/gogpu/labelcolor/internal/colorspace"
)

// ErrSamplingExhausted is returned when the rejection-sampling loop hits its
// sample cap before collecting enough valid colors. In practice only a
// pathological colorspace/tolerance combination (for example a negative
// tolerance) can trigger it.
var ErrSamplingExhausted = errors.New("labelcolor: color sampling exhausted")

// Colorspace identifies the space random colors are sampled from.
type Colorspace uint8

const (
	// ColorspaceLab samples uniformly in CIE L*a*b* (default).
	ColorspaceLab Colorspace = iota
	// ColorspaceLuv samples uniformly in CIE L*u*v*.
	ColorspaceLuv
	// ColorspaceRGB samples uniformly in RGB directly (no conversion).
	ColorspaceRGB
)

// String returns the lowercase name of the colorspace.
func (s Colorspace) String() string {
	switch s {
	case ColorspaceLuv:
		return "luv"
	case ColorspaceRGB:
		return "rgb"
	default:
		return "lab"
	}
}

// Option configures the random color sampler.
//
// Example:
//
//	// Default: Lab space, tolerance 0, seed 0.5
//	colors, err := labelcolor.RandomColors(256)
//
//	// Custom space and seed
//	colors, err := labelcolor.RandomColors(256,
//	    labelcolor.WithColorspace(labelcolor.ColorspaceLuv),
//	    labelcolor.WithSeed(0.1, 0.2, 0.3))
type Option func(*samplerOptions)

// samplerOptions holds optional configuration for RandomColors.
type samplerOptions struct {
	colorspace Colorspace
	tolerance  float64
	seed       []float64
}

// defaultSamplerOptions returns the default sampler options.
func defaultSamplerOptions() samplerOptions {
	return samplerOptions{
		colorspace: ColorspaceLab,
		tolerance:  0,
		seed:       nil, // nil means DefaultSeed broadcast to all dimensions
	}
}

// WithColorspace sets the space colors are sampled from.
func WithColorspace(cs Colorspace) Option {
	return func(o *samplerOptions) {
		o.colorspace = cs
	}
}

// WithTolerance allows RGB channels to exceed [0, 1] by up to t before a
// sampled color is rejected; surviving channels are clipped into range.
func WithTolerance(t float64) Option {
	return func(o *samplerOptions) {
		o.tolerance = t
	}
}

// WithSeed sets the starting point of the low-discrepancy sequence: either a
// single value broadcast to all three dimensions, or exactly three values.
func WithSeed(seed ...float64) Option {
	return func(o *samplerOptions) {
		o.seed = seed
	}
}

const (
	// startFactor is the initial oversampling factor: about 1/5 of random
	// LUV triples land inside the sRGB cube, so 6x covers the common case
	// in a single round.
	startFactor = 6

	// maxSamples caps a single rejection round. The factor doubles each
	// round, so reaching the cap means the valid fraction is near zero and
	// the loop would otherwise never terminate.
	maxSamples = 1 << 22
)

// RandomColors generates n RGB triples in [0, 1]^3, distributed uniformly in
// the chosen colorspace and fully determined by the seed.
//
// Candidate points come from the 3D low-discrepancy sequence, get mapped into
// the colorspace's bounding box, converted to sRGB, and validated; if fewer
// than n survive, the sample size doubles and the round restarts from the
// same seed. The prefix property of the sequence means earlier points recur
// unchanged in larger draws. The first n valid colors are returned in
// generation order.
func RandomColors(n int, opts ...Option) ([][3]float64, error) {
	o := defaultSamplerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	seed, err := broadcastSeed(o.seed, 3)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return [][3]float64{}, nil
	}

	for factor := startFactor; ; factor *= 2 {
		if factor > maxSamples/n {
			return nil, fmt.Errorf("%w: %s space at tolerance %g yielded fewer than %d valid colors within the %d-sample cap",
				ErrSamplingExhausted, o.colorspace, o.tolerance, n, maxSamples)
		}
		pts, err := Points(3, n*factor, seed)
		if err != nil {
			return nil, err
		}
		raw := make([][3]float64, len(pts))
		for i, p := range pts {
			q := [3]float64{p[0], p[1], p[2]}
			switch o.colorspace {
			case ColorspaceLuv:
				raw[i] = colorspace.LuvToRGB(colorspace.Luv.FromUnit(q))
			case ColorspaceRGB:
				raw[i] = q
			default:
				raw[i] = colorspace.LabToRGB(colorspace.Lab.FromUnit(q))
			}
		}
		valid := ValidateRGB(raw, o.tolerance)
		if len(valid) >= n {
			return valid[:n], nil
		}
		Logger().Debug("labelcolor: resampling",
			"colorspace", o.colorspace.String(),
			"factor", factor,
			"valid", len(valid),
			"want", n)
	}
}
