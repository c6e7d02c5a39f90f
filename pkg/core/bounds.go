package core

// Rect is an inclusive axis-aligned cell rectangle.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Pad grows the rectangle by n cells on every side.
func (r Rect) Pad(n int) Rect {
	return Rect{MinX: r.MinX - n, MinY: r.MinY - n, MaxX: r.MaxX + n, MaxY: r.MaxY + n}
}

// Clip restricts the rectangle to [0, w-1] × [0, h-1].
func (r Rect) Clip(w, h int) Rect {
	return Rect{
		MinX: max(r.MinX, 0),
		MinY: max(r.MinY, 0),
		MaxX: min(r.MaxX, w-1),
		MaxY: min(r.MaxY, h-1),
	}
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
}

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool { return r.MinX > r.MaxX || r.MinY > r.MaxY }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// ActiveBounds returns the bounding box of every cell that is non-zero in at
// least one of the grids. All grids must share a shape. The boolean is false
// when every cell is zero.
func ActiveBounds(grids ...*ByteGrid) (Rect, bool) {
	if len(grids) == 0 {
		return Rect{}, false
	}
	w, h := grids[0].W, grids[0].H
	r := Rect{MinX: w, MinY: h, MaxX: -1, MaxY: -1}
	found := false
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			active := false
			for _, g := range grids {
				if g.data[row+x] != 0 {
					active = true
					break
				}
			}
			if !active {
				continue
			}
			found = true
			r.MinX = min(r.MinX, x)
			r.MaxX = max(r.MaxX, x)
			r.MinY = min(r.MinY, y)
			r.MaxY = max(r.MaxY, y)
		}
	}
	if !found {
		return Rect{}, false
	}
	return r, true
}
