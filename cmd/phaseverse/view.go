//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"phase-ca/internal/app"
)

func (c *cli) view() error {
	vc := c.cfg.View
	pause, err := vc.PauseDuration()
	if err != nil {
		return err
	}
	sim, err := c.newSim()
	if err != nil {
		return err
	}
	game := app.New(sim, app.Options{
		Canvas:  vc.Canvas,
		Stretch: vc.Stretch,
		HUD:     vc.HUD,
		Pause:   pause,
		Ellipse: vc.Ellipse,
		Seed:    c.cfg.Universe.Seed,
		Logger:  c.logger,
	})

	w, h := game.WindowSize(vc.Scale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Life Emergence — Step 0")
	ebiten.SetTPS(vc.TPS)
	c.logger.Info("view started", zap.String("sim", sim.Name()), zap.Int("width", w), zap.Int("height", h))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
