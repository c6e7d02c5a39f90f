package universe

import (
	"errors"
	"fmt"
	"strconv"
)

// Lattice and rule constants of the reference universe.
const (
	DefaultSize = 40
	MinSize     = 2*seedRadius + 1

	seedRadius = 2
)

var (
	// ErrSizeTooSmall is returned when the lattice cannot hold the 5×5 seed block.
	ErrSizeTooSmall = errors.New("universe: size too small for seed block")
	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("universe: nil random source")
	// ErrInvalidParams is returned when rule parameters break an invariant.
	ErrInvalidParams = errors.New("universe: invalid params")
)

// Params holds the rule thresholds and lattice growth constants.
type Params struct {
	EdgeThreshold int `yaml:"edge_threshold"`
	ZoomPadding   int `yaml:"zoom_padding"`
	WindowPad     int `yaml:"window_pad"`

	SpawnStep   int `yaml:"spawn_step"`
	SpawnRadius int `yaml:"spawn_radius"`

	SurvivalMin   int     `yaml:"survival_min"`
	SurvivalMax   int     `yaml:"survival_max"`
	BirthVariance float64 `yaml:"birth_variance"`

	// FullUpdate recomputes every cell each step instead of the padded
	// active window. Results are identical; only cost differs.
	FullUpdate bool `yaml:"full_update"`
}

// Config controls the universe dimensions and rules.
type Config struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultParams returns the reference rule constants.
func DefaultParams() Params {
	return Params{
		EdgeThreshold: 3,
		ZoomPadding:   20,
		WindowPad:     2,
		SpawnStep:     37,
		SpawnRadius:   2,
		SurvivalMin:   1,
		SurvivalMax:   5,
		BirthVariance: 0.2,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:   DefaultSize,
		Seed:   42,
		Params: DefaultParams(),
	}
}

// Validate reports configuration errors. Size problems wrap ErrSizeTooSmall,
// rule problems wrap ErrInvalidParams.
func (c Config) Validate() error {
	if c.Size < MinSize {
		return fmt.Errorf("%w: got %d, need at least %d", ErrSizeTooSmall, c.Size, MinSize)
	}
	p := c.Params
	switch {
	case p.WindowPad < 1:
		return fmt.Errorf("%w: window_pad %d must be at least 1", ErrInvalidParams, p.WindowPad)
	case p.ZoomPadding < 1:
		return fmt.Errorf("%w: zoom_padding %d must be at least 1", ErrInvalidParams, p.ZoomPadding)
	case p.EdgeThreshold < 0:
		return fmt.Errorf("%w: edge_threshold %d must not be negative", ErrInvalidParams, p.EdgeThreshold)
	case p.SpawnRadius < 0:
		return fmt.Errorf("%w: spawn_radius %d must not be negative", ErrInvalidParams, p.SpawnRadius)
	case p.SurvivalMin < 0 || p.SurvivalMax > 8 || p.SurvivalMin > p.SurvivalMax:
		return fmt.Errorf("%w: survival window [%d,%d] outside [0,8]", ErrInvalidParams, p.SurvivalMin, p.SurvivalMax)
	case p.BirthVariance < 0:
		return fmt.Errorf("%w: birth_variance %g must not be negative", ErrInvalidParams, p.BirthVariance)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored and keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	intKeys := map[string]*int{
		"edge_threshold": &c.Params.EdgeThreshold,
		"zoom_padding":   &c.Params.ZoomPadding,
		"window_pad":     &c.Params.WindowPad,
		"spawn_step":     &c.Params.SpawnStep,
		"spawn_radius":   &c.Params.SpawnRadius,
		"survival_min":   &c.Params.SurvivalMin,
		"survival_max":   &c.Params.SurvivalMax,
	}
	for key, dst := range intKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["birth_variance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.BirthVariance = parsed
		}
	}
	if v, ok := cfg["full_update"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.FullUpdate = parsed
		}
	}
	return c
}

// Map renders the config as the flag-style key/value pairs read by FromMap.
func (c Config) Map() map[string]string {
	p := c.Params
	return map[string]string{
		"size":           strconv.Itoa(c.Size),
		"seed":           strconv.FormatInt(c.Seed, 10),
		"edge_threshold": strconv.Itoa(p.EdgeThreshold),
		"zoom_padding":   strconv.Itoa(p.ZoomPadding),
		"window_pad":     strconv.Itoa(p.WindowPad),
		"spawn_step":     strconv.Itoa(p.SpawnStep),
		"spawn_radius":   strconv.Itoa(p.SpawnRadius),
		"survival_min":   strconv.Itoa(p.SurvivalMin),
		"survival_max":   strconv.Itoa(p.SurvivalMax),
		"birth_variance": strconv.FormatFloat(p.BirthVariance, 'g', -1, 64),
		"full_update":    strconv.FormatBool(p.FullUpdate),
	}
}
