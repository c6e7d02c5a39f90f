package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phase-ca/pkg/core"
	"phase-ca/pkg/sims/universe"
)

func TestFillPaletteRGBAClampsToLastEntry(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 3*4)
	fillPaletteRGBA(buf, []uint8{0, 1, 7}, palette)

	assert.Equal(t, []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}, buf)
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{3}, nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestInEllipse(t *testing.T) {
	assert.True(t, InEllipse(5, 5, 10, 10))
	assert.True(t, InEllipse(0, 5, 10, 10))
	assert.False(t, InEllipse(0, 0, 10, 10))
	assert.False(t, InEllipse(9, 0, 10, 10))
	assert.False(t, InEllipse(0, 0, 0, 10))
}

func newUniverse(t *testing.T, size int) *universe.Universe {
	t.Helper()
	cfg := universe.DefaultConfig()
	cfg.Size = size
	u, err := universe.NewSeeded(cfg)
	require.NoError(t, err)
	return u
}

func TestFrameMatchesLatticeSize(t *testing.T) {
	u := newUniverse(t, 12)
	img := Frame(u, FrameOptions{})
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())

	palette := u.Palette()
	cells := u.Cells()
	for i, c := range cells {
		want := palette[c]
		got := color.RGBA{R: img.Pix[i*4], G: img.Pix[i*4+1], B: img.Pix[i*4+2], A: img.Pix[i*4+3]}
		require.Equal(t, want, got, "cell %d", i)
	}
}

func TestFrameEllipseMasksCorners(t *testing.T) {
	u := newUniverse(t, 12)
	img := Frame(u, FrameOptions{Ellipse: true})
	assert.Equal(t, Background, img.RGBAAt(0, 0))
	assert.Equal(t, Background, img.RGBAAt(11, 11))
}

func TestFitScalesToRequestedSize(t *testing.T) {
	u := newUniverse(t, 10)
	src := Frame(u, FrameOptions{})
	dst := Fit(src, 40, 40)
	assert.Equal(t, 40, dst.Bounds().Dx())
	assert.Equal(t, 40, dst.Bounds().Dy())
	// Nearest-neighbor sampling keeps each source pixel as a 4×4 block.
	assert.Equal(t, src.RGBAAt(5, 5), dst.RGBAAt(21, 22))
}

type stubFields struct {
	side  int
	phase map[[2]int]uint8
	life  map[[2]int]uint8
}

func (s stubFields) PhaseAt(x, y int) uint8 { return s.phase[[2]int{x, y}] }
func (s stubFields) LifeAt(x, y int) uint8  { return s.life[[2]int{x, y}] }
func (s stubFields) Side() int              { return s.side }

func TestANSIWriteFramePlain(t *testing.T) {
	f := stubFields{
		side:  3,
		phase: map[[2]int]uint8{{1, 0}: 1, {2, 1}: 2},
		life:  map[[2]int]uint8{{0, 2}: 1},
	}
	var buf bytes.Buffer
	err := NewANSI(false).WriteFrame(&buf, f, core.Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2})
	require.NoError(t, err)
	assert.Equal(t, ".+.\n..#\n@..\n", buf.String())
}

func TestANSIWriteFrameClipsWindow(t *testing.T) {
	f := stubFields{side: 2}
	var buf bytes.Buffer
	err := NewANSI(false).WriteFrame(&buf, f, core.Rect{MinX: -3, MinY: -3, MaxX: 9, MaxY: 9})
	require.NoError(t, err)
	assert.Equal(t, "..\n..\n", buf.String())
}

func TestANSIWriteFrameColors(t *testing.T) {
	f := stubFields{side: 1, life: map[[2]int]uint8{{0, 0}: 1}}
	var buf bytes.Buffer
	require.NoError(t, NewANSI(true).WriteFrame(&buf, f, core.Rect{}))
	assert.True(t, strings.Contains(buf.String(), "\x1b["))
	assert.True(t, strings.Contains(buf.String(), "@"))
}
