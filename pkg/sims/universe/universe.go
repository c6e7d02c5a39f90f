package universe

import (
	"fmt"

	"go.uber.org/zap"

	"phase-ca/pkg/core"
)

// Universe couples a Z₃ phase field with a binary life field on a square
// lattice that grows whenever activity approaches its edge.
type Universe struct {
	cfg Config
	log *zap.Logger

	size      int
	phaseCurr *core.ByteGrid
	phaseNext *core.ByteGrid
	lifeCurr  *core.ByteGrid
	lifeNext  *core.ByteGrid
	display   []uint8

	steps      int
	expansions int

	spawned        bool
	spawnX, spawnY int
}

// Option customizes a Universe at construction.
type Option func(*Universe)

// WithLogger routes spawn and expansion events to l.
func WithLogger(l *zap.Logger) Option {
	return func(u *Universe) {
		if l != nil {
			u.log = l
		}
	}
}

// New builds a universe of cfg.Size and seeds its central 5×5 block with
// phase values drawn from src. The life field starts empty.
func New(cfg Config, src core.Source, opts ...Option) (*Universe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}
	u := &Universe{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(u)
	}
	u.seed(src)
	return u, nil
}

// SetLogger replaces the event logger; nil selects a no-op logger.
func (u *Universe) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	u.log = l
}

// NewSeeded builds a universe seeded from cfg.Seed.
func NewSeeded(cfg Config, opts ...Option) (*Universe, error) {
	return New(cfg, core.NewRNG(cfg.Seed), opts...)
}

func (u *Universe) seed(src core.Source) {
	u.allocate(u.cfg.Size)
	u.steps = 0
	u.expansions = 0
	u.spawned = false
	u.spawnX, u.spawnY = 0, 0

	c := u.size / 2
	for dx := -seedRadius; dx <= seedRadius; dx++ {
		for dy := -seedRadius; dy <= seedRadius; dy++ {
			u.phaseCurr.Set(c+dx, c+dy, uint8(src.IntN(Phases)))
		}
	}
}

func (u *Universe) allocate(size int) {
	u.size = size
	u.phaseCurr = core.NewByteGrid(size, size)
	u.phaseNext = core.NewByteGrid(size, size)
	u.lifeCurr = core.NewByteGrid(size, size)
	u.lifeNext = core.NewByteGrid(size, size)
	u.display = make([]uint8, size*size)
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "universe" }

// Size reports the current lattice dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.size, H: u.size} }

// Side reports the current lattice side length.
func (u *Universe) Side() int { return u.size }

// StepCount reports how many steps have completed.
func (u *Universe) StepCount() int { return u.steps }

// Expansions reports how many times the lattice has grown.
func (u *Universe) Expansions() int { return u.expansions }

// Config returns the configuration the universe was built with.
func (u *Universe) Config() Config { return u.cfg }

// PhaseAt returns the phase at (x, y); positions off the lattice read as 0.
func (u *Universe) PhaseAt(x, y int) uint8 { return u.phaseCurr.At(x, y) }

// LifeAt returns the life value at (x, y); positions off the lattice read as 0.
func (u *Universe) LifeAt(x, y int) uint8 { return u.lifeCurr.At(x, y) }

// Spawned reports where the life cluster was seeded, if it has been.
func (u *Universe) Spawned() (x, y int, ok bool) {
	return u.spawnX, u.spawnY, u.spawned
}

// ActiveBounds returns the bounding box of non-zero cells across both fields.
func (u *Universe) ActiveBounds() (core.Rect, bool) {
	return core.ActiveBounds(u.phaseCurr, u.lifeCurr)
}

// Reset rebuilds the universe at its configured size from seed. A zero seed
// falls back to the configured seed.
func (u *Universe) Reset(seed int64) {
	if seed == 0 {
		seed = u.cfg.Seed
	}
	u.seed(core.NewRNG(seed))
}

// Step advances both fields by one synchronous generation.
func (u *Universe) Step() {
	if u.steps == u.cfg.Params.SpawnStep {
		u.spawnLife()
	}

	if window, ok := u.updateWindow(); ok {
		u.phaseNext.CopyFrom(u.phaseCurr)
		u.lifeNext.CopyFrom(u.lifeCurr)
		u.applyRules(window)
		u.phaseCurr, u.phaseNext = u.phaseNext, u.phaseCurr
		u.lifeCurr, u.lifeNext = u.lifeNext, u.lifeCurr
		u.maybeExpand()
	}

	u.steps++
}

// updateWindow returns the region the rules must be evaluated over. Cells
// outside it have all-zero neighborhoods in both fields and map to themselves.
func (u *Universe) updateWindow() (core.Rect, bool) {
	bbox, ok := u.ActiveBounds()
	if !ok {
		return core.Rect{}, false
	}
	if u.cfg.Params.FullUpdate {
		return core.Rect{MaxX: u.size - 1, MaxY: u.size - 1}, true
	}
	return bbox.Pad(u.cfg.Params.WindowPad).Clip(u.size, u.size), true
}

func (u *Universe) applyRules(window core.Rect) {
	p := u.cfg.Params
	for y := window.MinY; y <= window.MaxY; y++ {
		for x := window.MinX; x <= window.MaxX; x++ {
			idx := u.phaseCurr.Index(x, y)
			neigh := core.Neighbors(u.phaseCurr, x, y)
			u.phaseNext.Cells()[idx] = NextPhase(u.phaseCurr.Cells()[idx], neigh)

			alive := u.lifeCurr.Cells()[idx] == 1
			lifeNeighbors := core.NeighborSum(u.lifeCurr, x, y)
			if alive || lifeNeighbors > 0 {
				u.lifeNext.Cells()[idx] = NextLife(alive, lifeNeighbors, PhaseVariance(neigh), p)
			}
		}
	}
}

// String summarizes the universe for logs and debugging.
func (u *Universe) String() string {
	return fmt.Sprintf("universe(side=%d step=%d expansions=%d)", u.size, u.steps, u.expansions)
}

func init() {
	core.Register("universe", func(cfg map[string]string) (core.Sim, error) {
		return NewSeeded(FromMap(cfg))
	})
}
