//go:build !ebiten

package ui

import "phase-ca/pkg/core"

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay(core.Sim) *Overlay { return nil }

// Toggle is a no-op in the headless build.
func (o *Overlay) Toggle() {}

// Visible is always false in the headless build.
func (o *Overlay) Visible() bool { return false }

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any, int, int) {}
