package core

import "github.com/zyedidia/generic/mapset"

// Direction is one of the four movement/facing directions.
// The declaration order is the order in which held directions are applied
// each tick.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in update order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vertical reports whether the direction moves along the y axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Action returns the input action that drives this direction.
func (d Direction) Action() Action {
	switch d {
	case DirUp:
		return ActionUp
	case DirDown:
		return ActionDown
	case DirLeft:
		return ActionLeft
	case DirRight:
		return ActionRight
	default:
		return ActionNone
	}
}

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - generate a new world
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// InputFrame is the input snapshot for a single simulation tick: the set of
// actions that are active during this tick.
type InputFrame struct {
	actions mapset.Set[Action]
	init    bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		actions: mapset.New[Action](),
		init:    true,
	}
}

// FrameOf creates an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if !f.init {
		*f = NewInputFrame()
	}
	f.actions.Put(a)
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if !f.init {
		return false
	}
	return f.actions.Has(a)
}

// Holding reports whether the direction's action is active this frame.
func (f InputFrame) Holding(d Direction) bool {
	return f.Has(d.Action())
}

// Len returns the number of active actions.
func (f InputFrame) Len() int {
	if !f.init {
		return 0
	}
	return f.actions.Size()
}
