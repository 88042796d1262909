package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move the player left
	ActionRight          // Right arrow, D, L - move the player right
	ActionRestart        // R - start a fresh session after game over
	ActionHelp           // ? - toggle the key help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state read once per simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HoldInput turns key presses into held-key signals.
//
// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held until hold has elapsed since its last press. Pressing the
// opposite direction releases the other one immediately.
type HoldInput struct {
	hold    time.Duration
	pressed map[Action]time.Time
}

// NewHoldInput creates a tracker that keeps keys held for the given duration.
func NewHoldInput(hold time.Duration) *HoldInput {
	return &HoldInput{
		hold:    hold,
		pressed: make(map[Action]time.Time),
	}
}

// Press records a press (or auto-repeat) of a movement action at now.
// Actions other than left/right are ignored.
func (h *HoldInput) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(h.pressed, ActionRight)
	case ActionRight:
		delete(h.pressed, ActionLeft)
	default:
		return
	}
	h.pressed[a] = now
}

// Release marks an action as no longer held.
func (h *HoldInput) Release(a Action) {
	delete(h.pressed, a)
}

// Held reports whether a is still held at now.
func (h *HoldInput) Held(a Action, now time.Time) bool {
	at, ok := h.pressed[a]
	if !ok {
		return false
	}
	if now.Sub(at) > h.hold {
		delete(h.pressed, a)
		return false
	}
	return true
}

// Frame builds the movement input frame for a tick at now.
func (h *HoldInput) Frame(now time.Time) InputFrame {
	f := NewInputFrame()
	if h.Held(ActionLeft, now) {
		f.Set(ActionLeft)
	}
	if h.Held(ActionRight, now) {
		f.Set(ActionRight)
	}
	return f
}
