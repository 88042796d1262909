package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionRight)
	if !f.Has(ActionLeft) || !f.Has(ActionRight) {
		t.Error("frame should have both left and right")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionRight)
	if !zero.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestHoldInputExpires(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldInput(200 * time.Millisecond)

	h.Press(ActionLeft, start)

	if !h.Held(ActionLeft, start.Add(100*time.Millisecond)) {
		t.Error("left should be held within hold window")
	}
	if !h.Held(ActionLeft, start.Add(200*time.Millisecond)) {
		t.Error("left should be held at the end of the hold window")
	}
	if h.Held(ActionLeft, start.Add(201*time.Millisecond)) {
		t.Error("left should be released after hold window")
	}
}

func TestHoldInputRepeatExtends(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldInput(100 * time.Millisecond)

	h.Press(ActionRight, start)
	h.Press(ActionRight, start.Add(80*time.Millisecond))

	if !h.Held(ActionRight, start.Add(150*time.Millisecond)) {
		t.Error("auto-repeat should extend the hold")
	}
}

func TestHoldInputOppositeReleases(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldInput(time.Second)

	h.Press(ActionLeft, start)
	h.Press(ActionRight, start.Add(10*time.Millisecond))

	f := h.Frame(start.Add(20 * time.Millisecond))
	if f.Has(ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(ActionRight) {
		t.Error("right should be held")
	}

	h.Release(ActionRight)
	if h.Held(ActionRight, start.Add(30*time.Millisecond)) {
		t.Error("Release should drop the key")
	}
}

func TestHoldInputIgnoresOtherActions(t *testing.T) {
	h := NewHoldInput(time.Second)
	now := time.Unix(0, 0)

	h.Press(ActionRestart, now)
	h.Press(ActionQuit, now)

	if h.Held(ActionRestart, now) || h.Held(ActionQuit, now) {
		t.Error("non-movement actions should never be held")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
