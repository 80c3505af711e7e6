package core

import (
	"maps"
	"slices"
)

// Action is a key-independent player intent. Hosts translate keys into
// actions; games only ever see actions.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit
	ActionPause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes pointer presses from releases.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
)

// PointerEvent is a mouse button press or release at a screen cell.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame collects the input that arrived between two ticks.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerEvent // arrival order
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddPointer appends a pointer event to this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointer) == 0
}

// Clear empties the frame, keeping its storage for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = f.Pointer[:0]
}

// Clone returns a deep copy of the frame.
func (f InputFrame) Clone() InputFrame {
	actions := maps.Clone(f.Actions)
	if actions == nil {
		actions = make(map[Action]bool)
	}
	return InputFrame{
		Actions: actions,
		Pointer: slices.Clone(f.Pointer),
	}
}
