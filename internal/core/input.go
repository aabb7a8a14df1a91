package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionFlap                  // Space - upward impulse
	ActionPause                 // P - pause the running round
	ActionToggleHitboxes        // H - show/hide collision boxes
	ActionConfirm               // Enter - activate the primary menu button
	ActionQuit                  // Q, Ctrl+C, window close - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionToggleHitboxes:
		return "ToggleHitboxes"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Click holds the world-space position of a primary pointer press, if any.
	Click *Vec
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// ClickAt records a pointer press at world position p.
// A later press in the same frame replaces an earlier one.
func (f *InputFrame) ClickAt(p Vec) {
	f.Click = &p
}

// Clear resets all actions and the pointer press for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}
