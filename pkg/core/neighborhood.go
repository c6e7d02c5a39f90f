package core

// Offset is a relative grid displacement.
type Offset struct{ DX, DY int }

// MooreOffsets lists the eight Moore-neighbor offsets, dx-major then dy.
var MooreOffsets = [8]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the Moore neighborhood of (x, y) in MooreOffsets order.
// Boundaries are open: positions off the grid contribute 0.
func Neighbors(g *ByteGrid, x, y int) [8]uint8 {
	var out [8]uint8
	for i, o := range MooreOffsets {
		nx, ny := x+o.DX, y+o.DY
		if nx < 0 || nx >= g.W || ny < 0 || ny >= g.H {
			continue
		}
		out[i] = g.data[ny*g.W+nx]
	}
	return out
}

// NeighborSum returns the sum of the open-boundary Moore neighborhood of (x, y).
func NeighborSum(g *ByteGrid, x, y int) int {
	sum := 0
	for _, v := range Neighbors(g, x, y) {
		sum += int(v)
	}
	return sum
}
