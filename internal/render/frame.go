package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"phase-ca/pkg/core"
)

// Palettized is implemented by sims that map their display values to colors.
type Palettized interface {
	Palette() []color.RGBA
}

// FrameOptions controls how a sim is rasterized.
type FrameOptions struct {
	Ellipse    bool
	Background color.RGBA
}

// Frame rasterizes the current cells of sim at one pixel per cell. Sims that
// are not Palettized render non-zero cells white on black.
func Frame(sim core.Sim, opts FrameOptions) *image.RGBA {
	size := sim.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillFrame(img.Pix, sim, opts)
	return img
}

func fillFrame(buf []byte, sim core.Sim, opts FrameOptions) {
	size := sim.Size()
	palette := []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	if p, ok := sim.(Palettized); ok {
		palette = p.Palette()
	}
	fillPaletteRGBA(buf, sim.Cells(), palette)
	if opts.Ellipse {
		bg := opts.Background
		if bg == (color.RGBA{}) {
			bg = Background
		}
		maskEllipse(buf, size.W, size.H, bg)
	}
}

// Fit scales src with nearest-neighbor sampling into a new w×h image. A
// growing lattice therefore reads as a zoom-out at constant output size.
func Fit(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
