// Command phaseverse drives the phase/life universe headless, in a window, or
// as a multi-seed sweep.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"phase-ca/internal/config"
	"phase-ca/internal/logging"
	"phase-ca/pkg/core"
)

// cli carries the state shared by every subcommand.
type cli struct {
	configPath string
	logLevel   string
	simName    string
	size       int
	seed       int64

	cfg    config.Config
	logger *zap.Logger
	runID  string
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "phaseverse",
		Short: "Phase and life cellular automaton on a growing lattice",
		Long: `phaseverse evolves a three-valued phase field and a binary life field on a
square lattice that grows whenever activity approaches its edge.

Run without a subcommand to print this help.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&c.simName, "sim", "universe", "registered simulation to run")
	pf.IntVar(&c.size, "size", 0, "initial lattice side")
	pf.Int64Var(&c.seed, "seed", 0, "seed for the initial phase block")

	root.AddCommand(newRunCmd(c), newViewCmd(c), newSweepCmd(c), newParamsCmd(c))
	return root
}

// setup loads configuration, applies persistent flag overrides and builds the
// logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if _, ok := core.Sims()[c.simName]; !ok {
		return fmt.Errorf("unknown sim %q (available: %s)", c.simName, strings.Join(core.Names(), ", "))
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Universe.Size = c.size
	}
	if flags.Changed("seed") {
		cfg.Universe.Seed = c.seed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	c.runID = uuid.NewString()
	c.logger = logger.With(zap.String("run_id", c.runID), zap.String("command", cmd.Name()))
	return nil
}

// newSim builds the selected sim from the effective universe configuration
// and hands it the run logger when it accepts one.
func (c *cli) newSim() (core.Sim, error) {
	sim, err := core.NewSim(c.simName, c.cfg.Universe.Map())
	if err != nil {
		return nil, err
	}
	if ls, ok := sim.(loggerSetter); ok {
		ls.SetLogger(c.logger)
	}
	return sim, nil
}

type loggerSetter interface {
	SetLogger(*zap.Logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
