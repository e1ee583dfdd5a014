package core

import "testing"

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) || f.Len() != 0 {
		t.Error("zero-value frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || !f.Holding(DirLeft) {
		t.Error("Set on zero-value frame should work")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionUp, ActionRight, ActionUp)

	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
	if !f.Holding(DirUp) || !f.Holding(DirRight) || f.Holding(DirDown) {
		t.Error("FrameOf should hold exactly up and right")
	}
}

func TestDirectionAction(t *testing.T) {
	want := map[Direction]Action{
		DirUp:    ActionUp,
		DirDown:  ActionDown,
		DirLeft:  ActionLeft,
		DirRight: ActionRight,
	}
	for d, a := range want {
		if d.Action() != a {
			t.Errorf("%s.Action() = %s, expected %s", d, d.Action(), a)
		}
	}
	if !DirUp.Vertical() || DirLeft.Vertical() {
		t.Error("Vertical() mismatch")
	}
	if Directions != [...]Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Error("update order must be up, down, left, right")
	}
}
