//go:build !ebiten

package ui

import "mad-sand/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// SetHeatVisible is a no-op in headless builds.
func (o *Overlay) SetHeatVisible(bool) {}

// HeatVisible is always false in headless builds.
func (o *Overlay) HeatVisible() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}

// DrawBrush is a no-op placeholder.
func (o *Overlay) DrawBrush(any, int, int, int) {}
