package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phase-ca/internal/sweep"
)

func newSweepCmd(c *cli) *cobra.Command {
	var (
		seeds   []int64
		steps   int
		workers int
		asYAML  bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one universe per seed in parallel and rank the outcomes",
		Long: `Runs the configured universe once for every seed and prints the final census
of each run, ordered by live population.

Example:
  phaseverse sweep --seeds 1,2,3,4 --workers 4 --steps 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := c.cfg.Sweep
			flags := cmd.Flags()
			if flags.Changed("seeds") {
				sc.Seeds = seeds
			}
			if flags.Changed("steps") {
				sc.Steps = steps
			}
			if flags.Changed("workers") {
				sc.Workers = workers
			}

			c.logger.Info("sweep started",
				zap.Int("seeds", len(sc.Seeds)),
				zap.Int("steps", sc.Steps),
				zap.Int("workers", sc.Workers))
			results, err := sweep.Run(cmd.Context(), sweep.Options{
				Base:    c.cfg.Universe,
				Seeds:   sc.Seeds,
				Steps:   sc.Steps,
				Workers: sc.Workers,
				Logger:  c.logger,
			})
			if err != nil {
				return err
			}
			ranked := sweep.Rank(results)

			out := cmd.OutOrStdout()
			if asYAML {
				return writeYAML(out, ranked)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEED\tSIDE\tEXPANSIONS\tPHASE\tLIVE\tPEAK\tSPAWN")
			for _, r := range ranked {
				spawn := "-"
				if r.Spawned {
					spawn = fmt.Sprintf("(%d,%d)", r.SpawnX, r.SpawnY)
				}
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
					r.Seed, r.Final.Side, r.Final.Expansions, r.Final.PhaseActive, r.Final.Live, r.Peak, spawn)
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.Int64SliceVar(&seeds, "seeds", nil, "comma separated seeds")
	f.IntVarP(&steps, "steps", "n", 0, "steps per seed")
	f.IntVarP(&workers, "workers", "w", 0, "parallel runs")
	f.BoolVar(&asYAML, "yaml", false, "print results as YAML")
	return cmd
}
