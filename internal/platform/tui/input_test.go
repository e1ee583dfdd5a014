package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

func TestHeldKeysHoldWindow(t *testing.T) {
	h := NewHeldKeys(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)

	tests := []struct {
		name    string
		at      time.Duration
		holding bool
	}{
		{"immediately", 0, true},
		{"within window", 149 * time.Millisecond, true},
		{"window elapsed", 150 * time.Millisecond, false},
		{"long after", time.Second, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := h.Snapshot(t0.Add(tc.at))
			if got := f.Holding(core.DirRight); got != tc.holding {
				t.Errorf("Holding(right) = %v, expected %v", got, tc.holding)
			}
		})
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionUp, t0.Add(100*time.Millisecond))

	if !h.Snapshot(t0.Add(200 * time.Millisecond)).Holding(core.DirUp) {
		t.Error("auto-repeat press should extend the hold")
	}
}

func TestHeldKeysIndependentDirections(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionDown, t0)

	f := h.Snapshot(t0.Add(10 * time.Millisecond))
	if !f.Holding(core.DirLeft) || !f.Holding(core.DirDown) || f.Len() != 2 {
		t.Errorf("expected left and down held, got %d actions", f.Len())
	}
}

func TestHeldKeysOneShotActions(t *testing.T) {
	h := NewHeldKeys(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionNone, t0)

	if f := h.Snapshot(t0); !f.Has(core.ActionPause) || f.Len() != 1 {
		t.Error("pause should fire on the next snapshot")
	}
	if f := h.Snapshot(t0); f.Has(core.ActionPause) {
		t.Error("pause should fire only once")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionRestart, t0)
	h.Release()

	if f := h.Snapshot(t0); f.Len() != 0 {
		t.Errorf("after Release, %d actions active", f.Len())
	}
}
