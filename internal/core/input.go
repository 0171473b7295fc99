package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // W, Up arrow - move up
	ActionDown                 // S, Down arrow - move down
	ActionLeft                 // A, Left arrow - move left
	ActionRight                // D, Right arrow - move right
	ActionFire                 // Z, Space - fire while held
	ActionToggleDebug          // C - collision overlay
	ActionDropRateDown         // [ - lower bell drop rate
	ActionDropRateUp           // ] - raise bell drop rate
	ActionForceBoss            // B - jump straight to the boss
	ActionUseInvincible        // M - spend a stored invincibility charge
	ActionRestart              // R - retry after game over or clear
	ActionQuit                 // Q, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionToggleDebug:
		return "ToggleDebug"
	case ActionDropRateDown:
		return "DropRateDown"
	case ActionDropRateUp:
		return "DropRateUp"
	case ActionForceBoss:
		return "ForceBoss"
	case ActionUseInvincible:
		return "UseInvincible"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action is a continuous one (movement, fire)
// rather than a one-shot edge trigger.
func (a Action) IsHeld() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionFire:
		return true
	}
	return false
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that are active during this frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(actions)),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
