//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"phase-ca/pkg/core"
)

// GridPainter uploads sim cells into an RGBA image and draws it. The image is
// reallocated whenever the sim's lattice changes size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	opts FrameOptions
}

// NewGridPainter allocates a painter using opts for every frame.
func NewGridPainter(opts FrameOptions) *GridPainter {
	return &GridPainter{opts: opts}
}

// SetEllipse toggles the elliptical viewport mask.
func (gp *GridPainter) SetEllipse(on bool) { gp.opts.Ellipse = on }

// Ellipse reports whether the elliptical mask is active.
func (gp *GridPainter) Ellipse() bool { return gp.opts.Ellipse }

// Blit uploads the current cells and draws them stretched to fill a
// dstW×dstH region at the origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, dstW, dstH int) {
	size := sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if gp.img == nil || gp.w != size.W || gp.h != size.H {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = size.W, size.H
		gp.img = ebiten.NewImage(size.W, size.H)
		gp.buf = make([]byte, 4*size.W*size.H)
	}
	fillFrame(gp.buf, sim, gp.opts)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dstW)/float64(size.W), float64(dstH)/float64(size.H))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
