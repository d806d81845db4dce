package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeftUp) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionLeftUp)
	f.Set(ActionRightDown)

	if !f.Has(ActionLeftUp) || !f.Has(ActionRightDown) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionLeftDown) {
		t.Error("Unset action should not be reported")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionClick)
	f.SetPointer(Point{X: 400, Y: 430})

	f.Clear()

	if f.Has(ActionClick) {
		t.Error("Clear should drop actions")
	}
	p, ok := f.Pointer()
	if !ok || p != (Point{X: 400, Y: 430}) {
		t.Errorf("Pointer() = %v, %v; expected (400, 430), true", p, ok)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.SetPointer(Point{X: 1, Y: 2})

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionConfirm) {
		t.Error("Clone should not share the action map with the original")
	}
	if _, ok := clone.Pointer(); !ok {
		t.Error("Clone should copy the pointer")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeftUp, "LeftUp"},
		{ActionRightDown, "RightDown"},
		{ActionClick, "Click"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.a), got, tc.expected)
		}
	}
}
