package tui

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// DefaultHoldWindow is how long a direction stays held after a key press.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys turns key presses into per-tick held state. Terminals report
// presses and auto-repeats but never releases, so a direction counts as
// held until the hold window passes without another press.
// Non-directional actions fire exactly once, on the next snapshot.
type HeldKeys struct {
	window  time.Duration
	pressed [len(core.Directions)]time.Time
	pending mapset.Set[core.Action]
}

// NewHeldKeys creates an input source with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:  window,
		pending: mapset.New[core.Action](),
	}
}

// Press records an action at time now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	for _, d := range core.Directions {
		if d.Action() == a {
			h.pressed[d] = now
			return
		}
	}
	h.pending.Put(a)
}

// Snapshot returns the actions active at time now and consumes one-shot actions.
func (h *HeldKeys) Snapshot(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for _, d := range core.Directions {
		at := h.pressed[d]
		if at.IsZero() {
			continue
		}
		if now.Sub(at) < h.window {
			frame.Set(d.Action())
		} else {
			h.pressed[d] = time.Time{}
		}
	}

	h.pending.Each(func(a core.Action) {
		frame.Set(a)
	})
	h.pending = mapset.New[core.Action]()
	return frame
}

// Release drops all held and pending input.
func (h *HeldKeys) Release() {
	h.pressed = [len(core.Directions)]time.Time{}
	h.pending = mapset.New[core.Action]()
}
