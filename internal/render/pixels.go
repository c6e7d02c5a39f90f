package render

import "image/color"

// Background is drawn for masked cells and for palettes that run out.
var Background = color.RGBA{R: 8, G: 8, B: 12, A: 255}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// maskEllipse paints every pixel of a w×h RGBA buffer that falls outside the
// inscribed ellipse with bg.
func maskEllipse(buf []byte, w, h int, bg color.RGBA) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if InEllipse(x, y, w, h) {
				continue
			}
			base := (y*w + x) * 4
			buf[base+0] = bg.R
			buf[base+1] = bg.G
			buf[base+2] = bg.B
			buf[base+3] = bg.A
		}
	}
}

// InEllipse reports whether (x, y) lies inside the ellipse inscribed in a w×h
// grid, centered at (w/2, h/2).
func InEllipse(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	cx := float64(w) / 2
	cy := float64(h) / 2
	dx := (float64(x) - cx) / cx
	dy := (float64(y) - cy) / cy
	return dx*dx+dy*dy <= 1
}
