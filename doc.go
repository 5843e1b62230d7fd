// Package labelcolor generates deterministic color palettes for categorical
// label images.
//
// # Overview
//
// labelcolor produces "random-looking" but fully reproducible colors for
// segmentation and label layers. Points are drawn from a low-discrepancy
// sequence, placed uniformly inside a perceptual colorspace (CIE L*a*b* or
// L*u*v*), converted to sRGB, and filtered by rejection sampling so that only
// displayable colors survive. The survivors become a zero-order-hold colormap
// in which position 0 is always fully transparent, the convention for
// "background" in label imagery.
//
// # Quick Start
//
//	import "github.com/gogpu/labelcolor"
//
//	// Build a 256-entry colormap for a label layer.
//	cmap, err := labelcolor.LabelColormap(256)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Color for label 42, without knowing the label range in advance.
//	c := cmap.Map(labelcolor.LabelToUnit(42, labelcolor.DefaultSeed))
//
// # Determinism
//
// Every operation is a pure function of its inputs. The same (dim, n, seed)
// always yields bit-identical points, and longer sequences are exact prefixes
// of shorter ones, so palettes are stable across sessions and machines.
//
// # Consumers
//
// labelcolor stops at RGBA floats and 8-bit color tables; uploading them to a
// texture or shader uniform is the renderer's job. HashColormap additionally
// emits the GLSL equivalent of its CPU lookup for consumers that color labels
// on the GPU.
package labelcolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
