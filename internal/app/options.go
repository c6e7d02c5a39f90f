package app

import (
	"time"

	"go.uber.org/zap"
)

// Options configures the interactive view.
type Options struct {
	Canvas  int           // logical canvas height; the lattice is fitted into it
	Stretch float64       // horizontal stretch applied to the canvas
	HUD     int           // HUD panel width, 0 hides it
	Pause   time.Duration // delay between simulation steps
	Ellipse bool
	Seed    int64
	Logger  *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Canvas <= 0 {
		o.Canvas = 400
	}
	if o.Stretch <= 0 {
		o.Stretch = 1
	}
	if o.HUD < 0 {
		o.HUD = 0
	}
	if o.Pause < 0 {
		o.Pause = 0
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
