package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	got := f.Actions()
	if len(got) != 2 {
		t.Fatalf("Actions() = %v, expected 2 actions (ActionNone must be dropped)", got)
	}
	if got[0] != ActionUp || got[1] != ActionLeft {
		t.Errorf("Actions() = %v, expected [Up Left]", got)
	}

	f.Clear()
	if len(f.Actions()) != 0 {
		t.Error("Clear() should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("ActionConfirm.String() = %q", ActionConfirm.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
