package labelcolor

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimension is returned when a sequence dimension is outside {1, 2, 3}.
	ErrInvalidDimension = errors.New("labelcolor: invalid sequence dimension")

	// ErrShapeMismatch is returned when an input's length does not match what
	// the operation requires (seed vector vs. dimension, colors vs. controls).
	ErrShapeMismatch = errors.New("labelcolor: shape mismatch")
)

// DefaultSeed is the sequence starting point used when no seed is given.
const DefaultSeed = 0.5

// Generalized golden ratios: phiD is the unique positive root of
// x^(d+1) = x + 1. Their reciprocals are the per-dimension increments of
// the R_d low-discrepancy sequence.
const (
	phi1 = 1.6180339887498948482
	phi2 = 1.32471795724474602596
	phi3 = 1.22074408460575947536
)

var invPhi = [3]float64{1 / phi1, 1 / phi2, 1 / phi3}

// Points generates the first n points of the R_d low-discrepancy sequence in
// [0, 1)^dim. Point i is (seed + i/phi) mod 1 elementwise.
//
// dim must be 1, 2, or 3. seed may be empty (DefaultSeed broadcast to every
// dimension), a single value (broadcast), or exactly dim values; any other
// length fails with ErrShapeMismatch.
//
// Points is pure and deterministic: identical arguments yield bit-identical
// output, and longer sequences are exact prefixes of shorter ones, i.e.
// Points(d, n+k, s)[:n] equals Points(d, n, s).
func Points(dim, n int, seed []float64) ([][]float64, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("%w: dim=%d (must be 1, 2, or 3)", ErrInvalidDimension, dim)
	}
	s, err := broadcastSeed(seed, dim)
	if err != nil {
		return nil, err
	}
	pts := make([][]float64, n)
	for i := range pts {
		p := make([]float64, dim)
		for d := 0; d < dim; d++ {
			p[d] = fract(s[d] + float64(i)*invPhi[d])
		}
		pts[i] = p
	}
	return pts, nil
}

// broadcastSeed expands a scalar or empty seed to dim values.
func broadcastSeed(seed []float64, dim int) ([]float64, error) {
	s := make([]float64, dim)
	switch len(seed) {
	case 0:
		for d := range s {
			s[d] = DefaultSeed
		}
	case 1:
		for d := range s {
			s[d] = seed[0]
		}
	case dim:
		copy(s, seed)
	default:
		return nil, fmt.Errorf("%w: got %d seed values for dim=%d (want 1 or %d)",
			ErrShapeMismatch, len(seed), dim, dim)
	}
	return s, nil
}

// fract returns the fractional part of x, in [0, 1).
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// LabelToUnit maps an integer label value to a reproducible position in
// [0, 1) using the one-dimensional sequence: (seed + label/phi) mod 1.
// Any label, no matter how large, gets a position without the caller knowing
// the label range in advance.
//
// LabelToUnit is pointwise: the value for a single label is bit-identical to
// the corresponding entry of a LabelImage batch with the same seed.
func LabelToUnit(label, seed float64) float64 {
	return fract(seed + label*invPhi[0])
}

// LabelImage applies LabelToUnit to every element of labels, producing the
// display-ready index image for a raw integer label array.
func LabelImage(labels []float64, seed float64) []float64 {
	out := make([]float64, len(labels))
	for i, v := range labels {
		out[i] = LabelToUnit(v, seed)
	}
	return out
}
