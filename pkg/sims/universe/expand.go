package universe

import (
	"go.uber.org/zap"

	"phase-ca/pkg/core"
)

// nearEdge reports whether the active region is within the edge threshold of
// the lattice boundary.
func (u *Universe) nearEdge(bbox core.Rect) bool {
	t := u.cfg.Params.EdgeThreshold
	safe := core.Rect{MinX: t, MinY: t, MaxX: u.size - t - 1, MaxY: u.size - t - 1}
	return !safe.Contains(bbox.MinX, bbox.MinY) || !safe.Contains(bbox.MaxX, bbox.MaxY)
}

// maybeExpand grows the lattice by ZoomPadding on every side when activity
// nears its edge. Every cell moves to (x+pad, y+pad) in fresh zeroed buffers.
func (u *Universe) maybeExpand() bool {
	bbox, ok := u.ActiveBounds()
	if !ok || !u.nearEdge(bbox) {
		return false
	}

	pad := u.cfg.Params.ZoomPadding
	oldSize := u.size
	phase := u.phaseCurr.Grow(pad)
	life := u.lifeCurr.Grow(pad)

	u.allocate(phase.W)
	u.phaseCurr = phase
	u.lifeCurr = life
	u.expansions++

	u.log.Info("lattice expanded",
		zap.Int("step", u.steps),
		zap.Int("from", oldSize),
		zap.Int("side", u.size),
		zap.Int("expansions", u.expansions))
	return true
}
