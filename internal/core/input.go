package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - left paddle up (held)
	ActionLeftDown         // S - left paddle down (held)
	ActionRightUp          // Up arrow - right paddle up (held)
	ActionRightDown        // Down arrow - right paddle down (held)
	ActionClick            // Pointer button pressed this frame
	ActionConfirm          // Enter - press the primary menu button
	ActionQuit             // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionClick:
		return "Click"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot consumed by one simulation tick.
// Paddle actions describe keys currently held; Click and Confirm are
// one-shot presses. The pointer, when known, is expressed in board units.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	pointer    Point
	hasPointer bool
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

// SetPointer records the pointer position in board units.
func (f *InputFrame) SetPointer(p Point) {
	f.pointer = p
	f.hasPointer = true
}

// Pointer returns the pointer position and whether one is known.
func (f InputFrame) Pointer() (Point, bool) {
	return f.pointer, f.hasPointer
}

// Clear resets all actions for the next frame.
// The pointer is kept: it stays where it was until the next motion event.
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
	clone.pointer = f.pointer
	clone.hasPointer = f.hasPointer
	return clone
}
