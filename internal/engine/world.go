// Package engine is the headless engine surface the round rules run on:
// velocity integration with world-bound clamping, a recurring timer,
// overlap detection and the scene lifecycle.
package engine

import (
	"time"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// World integrates body positions from their velocities.
type World struct {
	bounds core.RectF
	bodies []*core.Body
	paused bool
}

// NewWorld creates an empty world with the given bounds.
func NewWorld(bounds core.RectF) *World {
	return &World{
		bounds: bounds,
		bodies: make([]*core.Body, 0, 16),
	}
}

// Bounds returns the world bounds.
func (w *World) Bounds() core.RectF {
	return w.bounds
}

// Add registers a body. Adding the same body twice has no effect.
func (w *World) Add(b *core.Body) {
	for _, existing := range w.bodies {
		if existing == b {
			return
		}
	}
	w.bodies = append(w.bodies, b)
}

// Remove unregisters a body and reports whether it was present.
func (w *World) Remove(b *core.Body) bool {
	for i, existing := range w.bodies {
		if existing == b {
			last := len(w.bodies) - 1
			w.bodies[i] = w.bodies[last]
			w.bodies[last] = nil
			w.bodies = w.bodies[:last]
			return true
		}
	}
	return false
}

// Len returns the number of registered bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Clear removes all bodies.
func (w *World) Clear() {
	for i := range w.bodies {
		w.bodies[i] = nil
	}
	w.bodies = w.bodies[:0]
}

// Pause stops position integration.
func (w *World) Pause() {
	w.paused = true
}

// Resume restarts position integration.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether integration is stopped.
func (w *World) Paused() bool {
	return w.paused
}

// Step advances every body by dt. Bodies flagged ClampToWorld are kept
// fully inside the bounds.
func (w *World) Step(dt time.Duration) {
	if w.paused || dt <= 0 {
		return
	}

	sec := dt.Seconds()
	for _, b := range w.bodies {
		b.X += b.VX * sec
		b.Y += b.VY * sec

		if b.ClampToWorld {
			b.X = core.ClampF(b.X, w.bounds.X, w.bounds.Right()-b.W)
			b.Y = core.ClampF(b.Y, w.bounds.Y, w.bounds.Bottom()-b.H)
		}
	}
}
