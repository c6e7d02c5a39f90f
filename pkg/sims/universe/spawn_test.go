package universe

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"phase-ca/pkg/core"
)

func TestSpawnLifePlacesBlockAtTurbulencePeak(t *testing.T) {
	u := blankUniverse(t, 20)
	u.phaseCurr.Set(5, 5, 2)
	u.phaseCurr.Set(14, 14, 1)

	// Neighbors of (5,5) carry variance 0.4375; the first of them in x-major
	// order is (4,4), just outside the active box.
	x, y, ok := u.turbulencePeak()
	if !ok || x != 4 || y != 4 {
		t.Fatalf("turbulencePeak = (%d,%d,%v), want (4,4,true)", x, y, ok)
	}

	u.spawnLife()
	sx, sy, spawned := u.Spawned()
	if !spawned || sx != 4 || sy != 4 {
		t.Fatalf("Spawned = (%d,%d,%v), want (4,4,true)", sx, sy, spawned)
	}
	for yy := 0; yy < 20; yy++ {
		for xx := 0; xx < 20; xx++ {
			want := uint8(0)
			if xx >= 2 && xx <= 6 && yy >= 2 && yy <= 6 {
				want = 1
			}
			if got := u.LifeAt(xx, yy); got != want {
				t.Fatalf("life (%d,%d) = %d, want %d", xx, yy, got, want)
			}
		}
	}
}

// wholeInteriorPeak scans every interior cell of the lattice.
func wholeInteriorPeak(u *Universe) (int, int, float64) {
	bestX, bestY, best := 1, 1, -1.0
	for x := 1; x <= u.size-2; x++ {
		for y := 1; y <= u.size-2; y++ {
			v := PhaseVariance(core.Neighbors(u.phaseCurr, x, y))
			if v > best {
				bestX, bestY, best = x, y, v
			}
		}
	}
	return bestX, bestY, best
}

func TestTurbulencePeakFindsRingOutsideActiveBox(t *testing.T) {
	u := blankUniverse(t, 20)
	u.phaseCurr.Set(10, 9, 2)
	u.phaseCurr.Set(10, 10, 2)
	u.phaseCurr.Set(10, 11, 2)

	x, y, ok := u.turbulencePeak()
	if !ok || x != 9 || y != 10 {
		t.Fatalf("turbulencePeak = (%d,%d,%v), want (9,10,true)", x, y, ok)
	}
	if v := PhaseVariance(core.Neighbors(u.phaseCurr, x, y)); v != 0.9375 {
		t.Fatalf("peak variance = %v, want 0.9375", v)
	}
}

func TestTurbulencePeakMatchesWholeInteriorScan(t *testing.T) {
	for _, seed := range []int64{1, 5, 9, 23} {
		u := mustNew(t, seededConfig(seed), core.NewRNG(seed))
		for i := 0; i < 20; i++ {
			u.Step()
		}
		x, y, ok := u.turbulencePeak()
		wx, wy, _ := wholeInteriorPeak(u)
		if !ok || x != wx || y != wy {
			t.Fatalf("seed %d: turbulencePeak = (%d,%d,%v), whole scan = (%d,%d)", seed, x, y, ok, wx, wy)
		}
	}
}

func TestSpawnLifeClipsAtLatticeEdge(t *testing.T) {
	u := blankUniverse(t, 6)
	u.phaseCurr.Set(1, 1, 2)

	// (1,1) itself has an all-zero neighborhood; the first neighbor in
	// x-major order is (1,2), so the block covers x 0..3, y 0..4.
	u.spawnLife()
	if x, y, _ := u.Spawned(); x != 1 || y != 2 {
		t.Fatalf("Spawned at (%d,%d), want (1,2)", x, y)
	}
	if c := u.Census(); c.Live != 20 {
		t.Fatalf("expected 20 live cells after a clipped spawn, got %d", c.Live)
	}
	if u.LifeAt(0, 0) != 1 || u.LifeAt(3, 4) != 1 || u.LifeAt(4, 4) != 0 || u.LifeAt(3, 5) != 0 {
		t.Fatal("spawn block not clipped to [0,3]x[0,4]")
	}
}

func TestSpawnLifeNoopOnEmptyLattice(t *testing.T) {
	u := blankUniverse(t, 10)
	u.spawnLife()
	if _, _, ok := u.Spawned(); ok {
		t.Fatal("empty lattice must not spawn")
	}
	if u.Census().Live != 0 {
		t.Fatal("empty lattice gained life")
	}
}

func TestSpawnFiresOnlyAtSpawnStep(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	u := mustNew(t, seededConfig(11), core.NewRNG(11), WithLogger(zap.New(obs)))
	spawnStep := u.cfg.Params.SpawnStep

	for u.StepCount() < spawnStep {
		u.Step()
		if _, _, ok := u.Spawned(); ok {
			t.Fatalf("spawned early at step %d", u.StepCount())
		}
		if live := u.Census().Live; live != 0 {
			t.Fatalf("life appeared before the spawn step: %d cells at step %d", live, u.StepCount())
		}
	}

	wantX, wantY, ok := u.turbulencePeak()
	if !ok {
		t.Fatal("expected activity at the spawn step")
	}
	u.Step()

	x, y, spawned := u.Spawned()
	if !spawned || x != wantX || y != wantY {
		t.Fatalf("Spawned = (%d,%d,%v), want (%d,%d,true)", x, y, spawned, wantX, wantY)
	}
	if u.Census().Live == 0 {
		t.Fatal("spawned cluster died within its first step")
	}

	for u.StepCount() < spawnStep+40 {
		u.Step()
	}
	if n := logs.FilterMessage("life spawned").Len(); n != 1 {
		t.Fatalf("expected exactly one spawn event, got %d", n)
	}
	if x2, y2, _ := u.Spawned(); x2 != x || y2 != y {
		t.Fatal("spawn point changed after the spawn step")
	}
}
