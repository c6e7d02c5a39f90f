package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phase-ca/internal/record"
	"phase-ca/internal/render"
	"phase-ca/pkg/sims/universe"
)

func newRunCmd(c *cli) *cobra.Command {
	var (
		steps       int
		pause       time.Duration
		printFrames bool
		video       string
		chart       string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve the universe headless for a number of steps",
		Long: `Steps the universe without a window. Frames can be printed to the terminal,
recorded as MJPEG video, and the population history rendered as a PNG chart.

Example:
  phaseverse run --steps 400 --video run.avi --chart run.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := c.cfg.Run
			flags := cmd.Flags()
			if flags.Changed("steps") {
				rc.Steps = steps
			}
			if flags.Changed("print") {
				rc.Print = printFrames
			}
			wait, err := rc.PauseDuration()
			if err != nil {
				return err
			}
			if flags.Changed("pause") {
				wait = pause
			}
			rec := c.cfg.Record
			if flags.Changed("video") {
				rec.Video = video
			}
			if flags.Changed("chart") {
				rec.Chart = chart
			}
			return c.run(cmd, rc.Steps, wait, rc.Print, rec.Video, rec.Chart)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&steps, "steps", "n", 0, "number of steps to run")
	f.DurationVar(&pause, "pause", 0, "delay between steps")
	f.BoolVar(&printFrames, "print", false, "print each frame to stdout")
	f.StringVar(&video, "video", "", "write an MJPEG AVI to this path")
	f.StringVar(&chart, "chart", "", "write a population chart PNG to this path")
	return cmd
}

func (c *cli) run(cmd *cobra.Command, steps int, pause time.Duration, printFrames bool, videoPath, chartPath string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	log := c.logger

	sim, err := c.newSim()
	if err != nil {
		return err
	}
	u, ok := sim.(*universe.Universe)
	if !ok {
		return fmt.Errorf("sim %q does not support headless runs", c.simName)
	}
	log.Info("run started",
		zap.String("sim", sim.Name()),
		zap.Int("steps", steps),
		zap.Int("size", c.cfg.Universe.Size),
		zap.Int64("seed", c.cfg.Universe.Seed))

	var rec *record.Recorder
	if videoPath != "" {
		rc := c.cfg.Record
		rec, err = record.NewRecorder(videoPath, rc.Frame, rc.FPS, rc.Quality, render.FrameOptions{Ellipse: rc.Ellipse})
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rec.Close(); cerr != nil {
				log.Error("closing video", zap.Error(cerr))
				return
			}
			log.Info("video written", zap.String("path", videoPath), zap.Int("frames", rec.Frames()))
		}()
		if err := rec.AddFrame(u); err != nil {
			return err
		}
	}

	ansi := render.NewANSI(os.Getenv("NO_COLOR") == "")
	history := []universe.Census{u.Census()}
	logEvery := c.cfg.Run.LogEvery

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn("run interrupted", zap.Int("step", u.StepCount()))
			break
		}
		u.Step()
		census := u.Census()
		history = append(history, census)

		if logEvery > 0 && census.Step%logEvery == 0 {
			log.Info("census",
				zap.Int("step", census.Step),
				zap.Int("side", census.Side),
				zap.Int("phase_active", census.PhaseActive),
				zap.Int("live", census.Live),
				zap.Int("expansions", census.Expansions))
		}
		if printFrames {
			if err := printFrame(out, ansi, u); err != nil {
				return err
			}
		}
		if rec != nil {
			if err := rec.AddFrame(u); err != nil {
				return err
			}
		}
		if pause > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(pause):
			}
		}
	}

	if chartPath != "" {
		if err := writeChart(chartPath, history); err != nil {
			return err
		}
		log.Info("chart written", zap.String("path", chartPath))
	}

	final := history[len(history)-1]
	fmt.Fprintf(out, "step %d: side %d, phase active %d, live %d, expansions %d\n",
		final.Step, final.Side, final.PhaseActive, final.Live, final.Expansions)
	return nil
}

func printFrame(w io.Writer, ansi *render.ANSI, u *universe.Universe) error {
	window, ok := u.ActiveBounds()
	if !ok {
		window.MaxX, window.MaxY = u.Side()-1, u.Side()-1
	}
	window = window.Pad(u.Config().Params.WindowPad)
	if _, err := fmt.Fprintf(w, "-- step %d side %d\n", u.StepCount(), u.Side()); err != nil {
		return err
	}
	return ansi.WriteFrame(w, u, window)
}

func writeChart(path string, history []universe.Census) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return record.WriteChart(f, history)
}
