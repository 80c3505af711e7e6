package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) = false after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) = true without Set")
	}

	f.Clear()
	if f.Has(ActionLeft) || !f.Empty() {
		t.Error("frame not empty after Clear")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(PointerEvent{Kind: PointerDown, X: 3, Y: 4})
	f.AddPointer(PointerEvent{Kind: PointerUp, X: 9, Y: 4})

	clone := f.Clone()
	f.Clear()

	if len(f.Pointer) != 0 {
		t.Errorf("Pointer has %d events after Clear", len(f.Pointer))
	}
	if len(clone.Pointer) != 2 || clone.Pointer[1].X != 9 {
		t.Errorf("clone lost pointer events: %+v", clone.Pointer)
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionLeft:    "Left",
		ActionRight:   "Right",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
