package universe

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"phase-ca/pkg/core"
)

// constSource always draws the same value.
type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }

func mustNew(t *testing.T, cfg Config, src core.Source, opts ...Option) *Universe {
	t.Helper()
	u, err := New(cfg, src, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return u
}

// blankUniverse returns a universe of the given size with both fields zero.
func blankUniverse(t *testing.T, size int) *Universe {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Size = size
	return mustNew(t, cfg, constSource(0))
}

func seededConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestNewRejectsSmallSize(t *testing.T) {
	for _, size := range []int{-1, 0, 4} {
		cfg := DefaultConfig()
		cfg.Size = size
		_, err := New(cfg, core.NewRNG(1))
		if !errors.Is(err, ErrSizeTooSmall) {
			t.Fatalf("size %d: expected ErrSizeTooSmall, got %v", size, err)
		}
	}
	cfg := DefaultConfig()
	cfg.Size = MinSize
	if _, err := New(cfg, core.NewRNG(1)); err != nil {
		t.Fatalf("size %d should be accepted: %v", MinSize, err)
	}
}

func TestNewRejectsNilSource(t *testing.T) {
	if _, err := New(DefaultConfig(), nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
}

func TestNewRejectsInvalidParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.WindowPad = 0
	if _, err := New(cfg, core.NewRNG(1)); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestConstructionSeedsCentralBlock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 10
	u := mustNew(t, cfg, core.NewRNG(7))

	if s := u.Size(); s.W != 10 || s.H != 10 {
		t.Fatalf("size = %+v, want 10x10", s)
	}
	if u.StepCount() != 0 {
		t.Fatalf("fresh universe step count = %d", u.StepCount())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inBlock := x >= 3 && x <= 7 && y >= 3 && y <= 7
			p := u.PhaseAt(x, y)
			if p >= Phases {
				t.Fatalf("phase (%d,%d) = %d out of range", x, y, p)
			}
			if !inBlock && p != 0 {
				t.Fatalf("phase (%d,%d) = %d outside the seed block", x, y, p)
			}
			if l := u.LifeAt(x, y); l != 0 {
				t.Fatalf("life (%d,%d) = %d, want 0", x, y, l)
			}
		}
	}
}

func TestSeedDrawsFromSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 10
	u := mustNew(t, cfg, constSource(2))
	for y := 3; y <= 7; y++ {
		for x := 3; x <= 7; x++ {
			if u.PhaseAt(x, y) != 2 {
				t.Fatalf("phase (%d,%d) = %d, want 2", x, y, u.PhaseAt(x, y))
			}
		}
	}
}

func TestSameSeedSameEvolution(t *testing.T) {
	a := mustNew(t, seededConfig(99), core.NewRNG(99))
	b := mustNew(t, seededConfig(99), core.NewRNG(99))
	for i := 0; i < 60; i++ {
		a.Step()
		b.Step()
	}
	if diff := cmp.Diff(a.Cells(), b.Cells()); diff != "" {
		t.Fatalf("same seed diverged (-a +b):\n%s", diff)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	u, err := NewSeeded(seededConfig(5))
	if err != nil {
		t.Fatal(err)
	}
	initial := append([]uint8(nil), u.Cells()...)
	for i := 0; i < 80; i++ {
		u.Step()
	}
	u.Reset(0)
	if u.StepCount() != 0 || u.Expansions() != 0 || u.Side() != DefaultSize {
		t.Fatalf("reset left %s", u)
	}
	if _, _, ok := u.Spawned(); ok {
		t.Fatal("reset must clear the spawn marker")
	}
	if diff := cmp.Diff(initial, u.Cells()); diff != "" {
		t.Fatalf("reset with configured seed differs (-want +got):\n%s", diff)
	}
}

func TestInvariantsHoldAcrossSteps(t *testing.T) {
	u := mustNew(t, seededConfig(1), core.NewRNG(1))
	prevSide := u.Side()
	for i := 0; i < 150; i++ {
		u.Step()
		if u.StepCount() != i+1 {
			t.Fatalf("step count = %d after %d steps", u.StepCount(), i+1)
		}
		side := u.Side()
		if side < prevSide {
			t.Fatalf("lattice shrank from %d to %d", prevSide, side)
		}
		if d := side - prevSide; d != 0 && d != 2*u.cfg.Params.ZoomPadding {
			t.Fatalf("lattice grew by %d, want 0 or %d", d, 2*u.cfg.Params.ZoomPadding)
		}
		prevSide = side

		for _, g := range []*core.ByteGrid{u.phaseCurr, u.phaseNext, u.lifeCurr, u.lifeNext} {
			if g.W != side || g.H != side {
				t.Fatalf("buffer is %dx%d on a %d lattice", g.W, g.H, side)
			}
		}
		for idx, v := range u.phaseCurr.Cells() {
			if v >= Phases {
				t.Fatalf("step %d: phase[%d] = %d", i, idx, v)
			}
		}
		for idx, v := range u.lifeCurr.Cells() {
			if v > 1 {
				t.Fatalf("step %d: life[%d] = %d", i, idx, v)
			}
		}
	}
}

func TestStepCountAdvancesWhenQuiescent(t *testing.T) {
	u := blankUniverse(t, 12)
	u.Step()
	u.Step()
	if u.StepCount() != 2 {
		t.Fatalf("step count = %d, want 2", u.StepCount())
	}
	if u.Side() != 12 || u.Expansions() != 0 {
		t.Fatalf("quiescent lattice changed: %s", u)
	}
	if c := u.Census(); c.PhaseActive != 0 || c.Live != 0 {
		t.Fatalf("quiescent lattice gained activity: %+v", c)
	}
}

func TestWindowedUpdateMatchesFullUpdate(t *testing.T) {
	for _, seed := range []int64{3, 17, 2024} {
		full := seededConfig(seed)
		full.Params.FullUpdate = true
		a := mustNew(t, seededConfig(seed), core.NewRNG(seed))
		b := mustNew(t, full, core.NewRNG(seed))
		for i := 0; i < 120; i++ {
			a.Step()
			b.Step()
			if a.Side() != b.Side() {
				t.Fatalf("seed %d step %d: sides differ %d vs %d", seed, i, a.Side(), b.Side())
			}
			if diff := cmp.Diff(a.Cells(), b.Cells()); diff != "" {
				t.Fatalf("seed %d step %d: windowed and full updates diverged (-window +full):\n%s", seed, i, diff)
			}
		}
	}
}

func TestQuiescentCellsStayZero(t *testing.T) {
	u := mustNew(t, seededConfig(8), core.NewRNG(8))
	for i := 0; i < 90; i++ {
		side := u.Side()
		var quiet []int
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				if u.PhaseAt(x, y) == 0 && u.LifeAt(x, y) == 0 &&
					core.NeighborSum(u.phaseCurr, x, y) == 0 &&
					core.NeighborSum(u.lifeCurr, x, y) == 0 {
					quiet = append(quiet, x, y)
				}
			}
		}
		spawnStep := u.StepCount() == u.cfg.Params.SpawnStep
		before := u.Expansions()
		u.Step()
		if spawnStep {
			// The spawned cluster may cover quiet cells.
			continue
		}
		offset := 0
		if u.Expansions() != before {
			offset = u.cfg.Params.ZoomPadding
		}
		for j := 0; j < len(quiet); j += 2 {
			x, y := quiet[j]+offset, quiet[j+1]+offset
			if u.PhaseAt(x, y) != 0 || u.LifeAt(x, y) != 0 {
				t.Fatalf("step %d: quiescent cell (%d,%d) woke up", i, quiet[j], quiet[j+1])
			}
		}
	}
}

func TestAccessorsOutOfRange(t *testing.T) {
	u := mustNew(t, seededConfig(2), constSource(1))
	side := u.Side()
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {side, 0}, {0, side}} {
		if u.PhaseAt(p[0], p[1]) != 0 || u.LifeAt(p[0], p[1]) != 0 {
			t.Fatalf("out-of-range read at %v should be 0", p)
		}
	}
}

func TestRegistryBuildsUniverse(t *testing.T) {
	sim, err := core.NewSim("universe", map[string]string{"size": "12", "seed": "4"})
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Name() != "universe" || sim.Size().W != 12 {
		t.Fatalf("unexpected sim %s of size %+v", sim.Name(), sim.Size())
	}
	if _, err := core.NewSim("universe", map[string]string{"size": "3"}); !errors.Is(err, ErrSizeTooSmall) {
		t.Fatalf("expected ErrSizeTooSmall from registry, got %v", err)
	}
	if names := core.Names(); len(names) == 0 || names[0] != "universe" {
		t.Fatalf("registry names = %v", names)
	}
}

func TestRegistryRoundTripsConfig(t *testing.T) {
	cfg := seededConfig(19)
	cfg.Size = 30
	cfg.Params.SpawnStep = 4

	sim, err := core.NewSim("universe", cfg.Map())
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	fromRegistry := sim.(*Universe)
	direct := mustNew(t, cfg, core.NewRNG(cfg.Seed))
	if fromRegistry.Config() != cfg {
		t.Fatalf("registry config = %+v, want %+v", fromRegistry.Config(), cfg)
	}

	obs, logs := observer.New(zap.InfoLevel)
	fromRegistry.SetLogger(zap.New(obs))
	for i := 0; i < 10; i++ {
		fromRegistry.Step()
		direct.Step()
	}
	if diff := cmp.Diff(direct.Cells(), fromRegistry.Cells()); diff != "" {
		t.Fatalf("registry-built universe diverged (-direct +registry):\n%s", diff)
	}
	if logs.FilterMessage("life spawned").Len() != 1 {
		t.Fatal("SetLogger did not route the spawn event")
	}
}
