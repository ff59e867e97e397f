package core

// Action represents a semantic game signal, abstracted from physical key
// presses. Movement actions are held (re-sent every tick the key repeats);
// the rest are one-shot menu and mode signals. Signals that are not valid
// for the game's current mode are ignored by the game without error.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A - move player left (held)
	ActionRight           // Right arrow, D - move player right (held)
	ActionStart           // 1, Enter in menu - start a run
	ActionSettings        // 2 in menu - open settings
	ActionToggle          // 1, T in settings - toggle the highlighted option
	ActionConfirm         // Enter at game over - return to menu
	ActionBack            // Esc, B in settings - back to menu
	ActionQuit            // 3, Q in menu - leave the game
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
	case ActionStart:
		return "Start"
	case ActionSettings:
		return "Settings"
	case ActionToggle:
		return "Toggle"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick: every action
// that was signalled since the previous tick. The platform builds one
// frame per tick and clears it after Step; the game never polls a device.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
