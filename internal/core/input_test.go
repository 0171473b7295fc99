package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionFire)

	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Fatal("NewInputFrame should set the given actions")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) = true, expected false")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionFire)
	if !zero.Has(ActionFire) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionIsHeld(t *testing.T) {
	tests := []struct {
		action Action
		held   bool
	}{
		{ActionUp, true},
		{ActionLeft, true},
		{ActionFire, true},
		{ActionForceBoss, false},
		{ActionUseInvincible, false},
		{ActionRestart, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsHeld(); got != tc.held {
				t.Errorf("IsHeld() = %v, expected %v", got, tc.held)
			}
		})
	}
}
