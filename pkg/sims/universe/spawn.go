package universe

import (
	"go.uber.org/zap"

	"phase-ca/pkg/core"
)

// spawnLife seeds a live cluster at the interior cell whose phase
// neighborhood has the highest variance. Ties keep the first maximum in
// x-major order.
func (u *Universe) spawnLife() {
	cx, cy, ok := u.turbulencePeak()
	if !ok {
		return
	}

	r := u.cfg.Params.SpawnRadius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			u.lifeCurr.Set(cx+dx, cy+dy, 1)
		}
	}
	u.spawned = true
	u.spawnX, u.spawnY = cx, cy
	u.log.Info("life spawned",
		zap.Int("step", u.steps),
		zap.Int("x", cx),
		zap.Int("y", cy),
		zap.Int("side", u.size))
}

// turbulencePeak locates the interior cell with maximum phase-neighbor
// variance. Only the active region and its one-cell ring can have non-zero
// neighbors, so the scan is limited to that band.
func (u *Universe) turbulencePeak() (int, int, bool) {
	bbox, ok := u.ActiveBounds()
	if !ok {
		return 0, 0, false
	}
	interior := core.Rect{MinX: 1, MinY: 1, MaxX: u.size - 2, MaxY: u.size - 2}
	scan := bbox.Pad(1).Intersect(interior)
	if scan.Empty() {
		return 0, 0, false
	}

	bestX, bestY := scan.MinX, scan.MinY
	best := -1.0
	for x := scan.MinX; x <= scan.MaxX; x++ {
		for y := scan.MinY; y <= scan.MaxY; y++ {
			v := PhaseVariance(core.Neighbors(u.phaseCurr, x, y))
			if v > best {
				best = v
				bestX, bestY = x, y
			}
		}
	}
	return bestX, bestY, true
}
