// Package record writes simulation runs to disk as MJPEG video and
// population charts.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"phase-ca/internal/render"
	"phase-ca/pkg/core"
)

// ErrBadFrame is returned for non-positive frame geometry.
var ErrBadFrame = errors.New("record: frame side and fps must be positive")

// Recorder appends rasterized sim frames to an AVI file. Every frame is
// scaled to the same side, so lattice growth reads as a zoom-out.
type Recorder struct {
	avi     mjpeg.AviWriter
	side    int
	quality int
	opts    render.FrameOptions
	buf     bytes.Buffer
	frames  int
}

// NewRecorder creates path and prepares it for side×side frames at fps.
func NewRecorder(path string, side, fps, quality int, opts render.FrameOptions) (*Recorder, error) {
	if side <= 0 || fps <= 0 {
		return nil, ErrBadFrame
	}
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	avi, err := mjpeg.New(path, int32(side), int32(side), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	return &Recorder{avi: avi, side: side, quality: quality, opts: opts}, nil
}

// AddFrame encodes the current state of sim as the next video frame.
func (r *Recorder) AddFrame(sim core.Sim) error {
	img := render.Fit(render.Frame(sim, r.opts), r.side, r.side)
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &jpeg.Options{Quality: r.quality}); err != nil {
		return fmt.Errorf("record: encode frame %d: %w", r.frames, err)
	}
	if err := r.avi.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("record: add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames have been written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalizes the AVI index. The file is unusable until Close returns.
func (r *Recorder) Close() error {
	return r.avi.Close()
}
