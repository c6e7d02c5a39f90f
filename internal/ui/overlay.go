//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"phase-ca/pkg/core"
)

type boundsProvider interface {
	ActiveBounds() (core.Rect, bool)
}

type spawnProvider interface {
	Spawned() (x, y int, ok bool)
}

var (
	boundsColor = color.RGBA{R: 240, G: 200, B: 60, A: 200}
	spawnColor  = color.RGBA{R: 255, G: 255, B: 255, A: 220}
)

// Overlay draws the active bounding box and the spawn site on top of the
// lattice. It is hidden until toggled.
type Overlay struct {
	sim     core.Sim
	visible bool
}

// NewOverlay constructs a hidden overlay for sim.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() {
	if o != nil {
		o.visible = !o.visible
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o != nil && o.visible }

// Draw paints the overlay into a w×h region at the origin of screen, using the
// same stretch as the lattice.
func (o *Overlay) Draw(screen *ebiten.Image, w, h int) {
	if !o.Visible() {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	sx := float32(w) / float32(size.W)
	sy := float32(h) / float32(size.H)

	if bp, ok := o.sim.(boundsProvider); ok {
		if r, ok := bp.ActiveBounds(); ok {
			x := float32(r.MinX) * sx
			y := float32(r.MinY) * sy
			rw := float32(r.MaxX-r.MinX+1) * sx
			rh := float32(r.MaxY-r.MinY+1) * sy
			vector.StrokeRect(screen, x, y, rw, rh, 1, boundsColor, false)
		}
	}
	if sp, ok := o.sim.(spawnProvider); ok {
		if x, y, ok := sp.Spawned(); ok {
			cx := (float32(x) + 0.5) * sx
			cy := (float32(y) + 0.5) * sy
			vector.StrokeCircle(screen, cx, cy, 3*max(sx, sy), 1, spawnColor, true)
		}
	}
}
