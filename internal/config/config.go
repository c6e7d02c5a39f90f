package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"phase-ca/internal/logging"
	"phase-ca/pkg/sims/universe"
)

// Config holds all phaseverse configuration.
type Config struct {
	// Simulation
	Universe universe.Config `yaml:"universe"`

	// Drivers
	Run    RunConfig    `yaml:"run"`
	View   ViewConfig   `yaml:"view"`
	Record RecordConfig `yaml:"record"`
	Sweep  SweepConfig  `yaml:"sweep"`

	// Logging
	Logging logging.Options `yaml:"logging"`
}

// RunConfig configures the headless loop.
type RunConfig struct {
	Steps    int    `yaml:"steps"`
	Pause    string `yaml:"pause"`     // delay between steps, e.g. "300ms"
	LogEvery int    `yaml:"log_every"` // census log interval in steps, 0 disables
	Print    bool   `yaml:"print"`     // print ANSI frames to stdout
}

// ViewConfig configures the ebiten window.
type ViewConfig struct {
	Scale   int     `yaml:"scale"`   // window pixels per logical pixel
	Canvas  int     `yaml:"canvas"`  // logical canvas side the lattice is fitted into
	TPS     int     `yaml:"tps"`     // ebiten ticks per second
	Pause   string  `yaml:"pause"`   // delay between simulation steps
	Ellipse bool    `yaml:"ellipse"` // mask cells outside the inscribed ellipse
	Stretch float64 `yaml:"stretch"` // horizontal stretch of the window
	HUD     int     `yaml:"hud"`     // HUD panel width in pixels, 0 hides it
}

// RecordConfig configures video and chart output.
type RecordConfig struct {
	Video   string `yaml:"video"`   // AVI path, empty disables
	Chart   string `yaml:"chart"`   // PNG path, empty disables
	FPS     int    `yaml:"fps"`
	Frame   int    `yaml:"frame"`   // output frame side in pixels
	Quality int    `yaml:"quality"` // JPEG quality 1..100
	Ellipse bool   `yaml:"ellipse"`
}

// SweepConfig configures multi-seed sweeps.
type SweepConfig struct {
	Seeds   []int64 `yaml:"seeds"`
	Steps   int     `yaml:"steps"`
	Workers int     `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Universe: universe.DefaultConfig(),
		Run: RunConfig{
			Steps:    1000,
			Pause:    "0s",
			LogEvery: 50,
		},
		View: ViewConfig{
			Scale:   2,
			Canvas:  400,
			TPS:     60,
			Pause:   "300ms",
			Ellipse: true,
			Stretch: 2.5,
			HUD:     220,
		},
		Record: RecordConfig{
			FPS:     10,
			Frame:   480,
			Quality: 90,
			Ellipse: false,
		},
		Sweep: SweepConfig{
			Seeds:   []int64{1, 2, 3, 4, 5, 6, 7, 8},
			Steps:   300,
			Workers: 4,
		},
		Logging: logging.Options{Level: "info"},
	}
}

// Load reads a YAML file and overlays it on Default. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the universe and driver sections.
func (c Config) Validate() error {
	if err := c.Universe.Validate(); err != nil {
		return err
	}
	if c.Run.Steps < 0 {
		return fmt.Errorf("run.steps must not be negative: %d", c.Run.Steps)
	}
	if _, err := c.Run.PauseDuration(); err != nil {
		return err
	}
	if _, err := c.View.PauseDuration(); err != nil {
		return err
	}
	if c.Record.Quality < 1 || c.Record.Quality > 100 {
		return fmt.Errorf("record.quality must be in [1,100]: %d", c.Record.Quality)
	}
	return nil
}

// PauseDuration parses the run pause.
func (r RunConfig) PauseDuration() (time.Duration, error) {
	return parseDuration("run.pause", r.Pause)
}

// PauseDuration parses the view pause.
func (v ViewConfig) PauseDuration() (time.Duration, error) {
	return parseDuration("view.pause", v.Pause)
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative: %s", field, s)
	}
	return d, nil
}
