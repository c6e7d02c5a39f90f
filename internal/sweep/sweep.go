// Package sweep runs one universe per seed in parallel and collects the final
// census of each run.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"phase-ca/pkg/sims/universe"
)

// ErrNoSeeds is returned when a sweep is started without seeds.
var ErrNoSeeds = errors.New("sweep: no seeds")

// Result summarizes one seeded run.
type Result struct {
	Seed    int64           `json:"seed" yaml:"seed"`
	Final   universe.Census `json:"final" yaml:"final"`
	Peak    int             `json:"peak_live" yaml:"peak_live"`
	Spawned bool            `json:"spawned" yaml:"spawned"`
	SpawnX  int             `json:"spawn_x" yaml:"spawn_x"`
	SpawnY  int             `json:"spawn_y" yaml:"spawn_y"`
	Elapsed time.Duration   `json:"elapsed" yaml:"elapsed"`
}

// Options configures a sweep.
type Options struct {
	Base    universe.Config
	Seeds   []int64
	Steps   int
	Workers int
	Logger  *zap.Logger
}

// Run simulates Base once per seed for Steps steps using at most Workers
// goroutines. Results are returned in seed order. Cancelling ctx stops the
// remaining runs between steps.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if len(opts.Seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if err := opts.Base.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range opts.Seeds {
		g.Go(func() error {
			res, err := runSeed(ctx, opts.Base, seed, opts.Steps)
			if err != nil {
				return fmt.Errorf("sweep: seed %d: %w", seed, err)
			}
			log.Debug("seed finished",
				zap.Int64("seed", seed),
				zap.Int("side", res.Final.Side),
				zap.Int("live", res.Final.Live),
				zap.Duration("elapsed", res.Elapsed))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSeed(ctx context.Context, base universe.Config, seed int64, steps int) (Result, error) {
	cfg := base
	cfg.Seed = seed
	u, err := universe.NewSeeded(cfg)
	if err != nil {
		return Result{}, err
	}
	start := time.Now()
	peak := 0
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		u.Step()
		peak = max(peak, u.Census().Live)
	}
	res := Result{
		Seed:    seed,
		Final:   u.Census(),
		Peak:    peak,
		Elapsed: time.Since(start),
	}
	res.SpawnX, res.SpawnY, res.Spawned = u.Spawned()
	return res, nil
}

// Rank orders results by final live population, then by seed.
func Rank(results []Result) []Result {
	ranked := append([]Result(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Final.Live != ranked[j].Final.Live {
			return ranked[i].Final.Live > ranked[j].Final.Live
		}
		return ranked[i].Seed < ranked[j].Seed
	})
	return ranked
}
