// Command labelswatch renders a generated label palette as a PNG strip.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/labelcolor"
)

func main() {
	var (
		n       = flag.Int("n", 64, "number of colors")
		seed    = flag.Float64("seed", labelcolor.DefaultSeed, "sequence seed")
		space   = flag.String("colorspace", "lab", "sampling colorspace: lab, luv, or rgb")
		cell    = flag.Int("cell", 16, "cell size in pixels")
		output  = flag.String("output", "swatch.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		labelcolor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var cs labelcolor.Colorspace
	switch *space {
	case "lab":
		cs = labelcolor.ColorspaceLab
	case "luv":
		cs = labelcolor.ColorspaceLuv
	case "rgb":
		cs = labelcolor.ColorspaceRGB
	default:
		log.Fatalf("unknown colorspace %q (want lab, luv, or rgb)", *space)
	}

	colors, err := labelcolor.RandomColors(*n,
		labelcolor.WithColorspace(cs),
		labelcolor.WithSeed(*seed))
	if err != nil {
		log.Fatalf("Failed to generate colors: %v", err)
	}

	// One pixel per color, scaled up with nearest neighbor so the cells
	// stay crisp instead of blending into a gradient.
	strip := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for i, c := range colors {
		strip.Set(i, 0, labelcolor.RGB(c[0], c[1], c[2]).Color())
	}
	dst := image.NewNRGBA(image.Rect(0, 0, len(colors)*(*cell), *cell))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), strip, strip.Bounds(), draw.Src, nil)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *output, err)
	}

	log.Printf("Swatch saved to %s (%d colors, %s space)\n", *output, *n, *space)
}
