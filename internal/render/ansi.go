package render

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"

	"phase-ca/pkg/core"
)

// Fields is the read-only view of a phase/life lattice.
type Fields interface {
	PhaseAt(x, y int) uint8
	LifeAt(x, y int) uint8
	Side() int
}

// ANSI renders lattices as colored text, one character per cell.
type ANSI struct {
	au aurora.Aurora
}

// NewANSI returns a text renderer; colors toggles escape sequences.
func NewANSI(colors bool) *ANSI {
	return &ANSI{au: aurora.NewAurora(colors)}
}

// WriteFrame writes the cells inside window, one row per line. Live cells
// print as '@', phases 0/1/2 as '.', '+' and '#'.
func (a *ANSI) WriteFrame(w io.Writer, f Fields, window core.Rect) error {
	window = window.Clip(f.Side(), f.Side())
	bw := bufio.NewWriter(w)
	for y := window.MinY; y <= window.MaxY; y++ {
		for x := window.MinX; x <= window.MaxX; x++ {
			if _, err := bw.WriteString(a.cell(f.PhaseAt(x, y), f.LifeAt(x, y))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (a *ANSI) cell(phase, life uint8) string {
	if life != 0 {
		return a.au.Red("@").String()
	}
	switch phase {
	case 1:
		return a.au.Blue("+").String()
	case 2:
		return a.au.Cyan("#").String()
	default:
		return a.au.Faint(".").String()
	}
}
