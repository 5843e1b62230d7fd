// Package colorspace provides the perceptual colorspace transforms and gamut
// bounds used by labelcolor's sampler.
package colorspace

import colorful "github.com/lucasb-eyer/go-colorful"

// Bounds is the axis-aligned bounding box of a colorspace: the min/max per
// channel over the conversions of every 24-bit RGB triple. Sampling inside
// the box covers the full sRGB gamut (plus the out-of-gamut corners that
// rejection sampling discards).
type Bounds struct {
	Min, Max [3]float64
}

// Precomputed offline by converting the full 2^24 RGB cube; recomputing them
// is not part of the runtime path.
var (
	// Lab bounds CIE L*a*b* (D65): L in [0, 100], a/b in conventional units.
	Lab = Bounds{
		Min: [3]float64{0, -86.18302974, -107.85730021},
		Max: [3]float64{100, 98.23305386, 94.47812228},
	}

	// Luv bounds CIE L*u*v* (D65).
	Luv = Bounds{
		Min: [3]float64{0, -83.07790815, -134.09790293},
		Max: [3]float64{100, 175.01447356, 107.39905336},
	}
)

// FromUnit maps a unit-cube point into the bounds: min + p*(max-min).
func (b Bounds) FromUnit(p [3]float64) [3]float64 {
	return [3]float64{
		b.Min[0] + p[0]*(b.Max[0]-b.Min[0]),
		b.Min[1] + p[1]*(b.Max[1]-b.Min[1]),
		b.Min[2] + p[2]*(b.Max[2]-b.Min[2]),
	}
}

// LabToRGB converts a CIE L*a*b* triple (conventional ranges, D65 white
// point) to sRGB. Out-of-gamut inputs yield finite channels outside [0, 1];
// no clamping is applied, so callers can tell valid colors from invalid ones.
//
// go-colorful scales L, a and b by 1/100 relative to the conventional ranges
// the Bounds use; the division here owns that difference.
func LabToRGB(lab [3]float64) [3]float64 {
	c := colorful.Lab(lab[0]/100, lab[1]/100, lab[2]/100)
	return [3]float64{c.R, c.G, c.B}
}

// LuvToRGB converts a CIE L*u*v* triple (conventional ranges, D65 white
// point) to sRGB. Same conventions as LabToRGB.
func LuvToRGB(luv [3]float64) [3]float64 {
	c := colorful.Luv(luv[0]/100, luv[1]/100, luv[2]/100)
	return [3]float64{c.R, c.G, c.B}
}
