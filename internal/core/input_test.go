package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Pointer = Pointer{X: 4, Y: 7, Down: true, Valid: true}
	f.Clear()

	if f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !f.Pointer.Down || f.Pointer.X != 4 {
		t.Error("Clear should keep pointer state")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Pointer = Pointer{X: 1, Y: 2, Valid: true}

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRight) {
		t.Error("Clone should be independent of the original")
	}
	if clone.Pointer != (Pointer{X: 1, Y: 2, Valid: true}) {
		t.Errorf("Clone pointer = %+v", clone.Pointer)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionSwitchWeapon, "SwitchWeapon"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
