package labelcolor

// ValidateRGB returns the subset of colors that lie in displayable RGB space.
//
// A triple is valid when every channel lies within [-tolerance, 1+tolerance];
// valid triples are clipped to [0, 1] per channel and returned in input
// order, invalid triples are dropped. tolerance trades recall (more colors
// kept) against fidelity (wider deviation from the true colorspace bounds);
// at the default 0 only already-legal RGB survives. NaN channels fail the
// comparisons and are dropped.
func ValidateRGB(colors [][3]float64, tolerance float64) [][3]float64 {
	lo := 0 - tolerance
	hi := 1 + tolerance
	filtered := make([][3]float64, 0, len(colors))
	for _, c := range colors {
		if c[0] >= lo && c[0] <= hi &&
			c[1] >= lo && c[1] <= hi &&
			c[2] >= lo && c[2] <= hi {
			filtered = append(filtered, [3]float64{
				clamp01(c[0]),
				clamp01(c[1]),
				clamp01(c[2]),
			})
		}
	}
	return filtered
}
