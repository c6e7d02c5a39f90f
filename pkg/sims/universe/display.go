package universe

import "image/color"

const (
	displayPhaseMask = 0x03
	displayLifeBit   = 0x04
)

var universePalette = buildUniversePalette()

// Palette exposes the color palette used for rendering display values.
func (u *Universe) Palette() []color.RGBA {
	return universePalette
}

// Cells exposes the display buffer: phase in the low two bits, life in bit 2.
// The buffer is rebuilt on every call and is only valid until the next Step.
func (u *Universe) Cells() []uint8 {
	u.rebuildDisplay()
	return u.display
}

func buildUniversePalette() []color.RGBA {
	palette := make([]color.RGBA, displayLifeBit<<1)
	for i := range palette {
		if i&displayLifeBit != 0 {
			palette[i] = color.RGBA{R: 255, A: 255}
			continue
		}
		phase := i & displayPhaseMask
		if phase >= Phases {
			phase = Phases - 1
		}
		palette[i] = color.RGBA{B: uint8(phase * 255 / (Phases - 1)), A: 255}
	}
	return palette
}

func encodeDisplayValue(phase, life uint8) uint8 {
	value := phase & displayPhaseMask
	if life != 0 {
		value |= displayLifeBit
	}
	return value
}

func (u *Universe) rebuildDisplay() {
	phase := u.phaseCurr.Cells()
	life := u.lifeCurr.Cells()
	for i := range u.display {
		u.display[i] = encodeDisplayValue(phase[i], life[i])
	}
}
