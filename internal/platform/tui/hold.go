package tui

import (
	"time"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// HoldState approximates held keys from key presses.
// Terminals deliver presses and auto-repeats but no releases, so an action
// counts as held until the window since its last press runs out.
type HoldState struct {
	window  time.Duration
	pressed map[core.Action]time.Time
}

// opposite maps each direction to the one it cancels.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// NewHoldState creates a hold tracker. A zero window holds each press for a
// single frame.
func NewHoldState(window time.Duration) *HoldState {
	return &HoldState{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records a press of the action. Pressing a direction releases the
// opposite one.
func (h *HoldState) Press(a core.Action, now time.Time) {
	if o, ok := opposite[a]; ok {
		delete(h.pressed, o)
	}
	h.pressed[a] = now
}

// Frame returns the actions held at the given time.
func (h *HoldState) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, at := range h.pressed {
		if h.window <= 0 {
			in.Set(a)
			delete(h.pressed, a)
			continue
		}
		if now.Sub(at) < h.window {
			in.Set(a)
		} else {
			delete(h.pressed, a)
		}
	}
	return in
}

// Reset releases every action.
func (h *HoldState) Reset() {
	for a := range h.pressed {
		delete(h.pressed, a)
	}
}
