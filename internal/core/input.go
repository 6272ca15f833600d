package core

// Action represents a semantic puzzle action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - point selector up
	ActionDown           // S, Down arrow - point selector down
	ActionLeft           // A, Left arrow - point selector left
	ActionRight          // D, Right arrow - point selector right
	ActionConfirm        // Space, Enter - confirm the selected quadrant
	ActionRotate         // R - spin the ring without selecting
	ActionRestart        // N - start a new puzzle
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionRotate:
		return "Rotate"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
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

// Axis folds the four direction actions into a two-axis intent with y pointing up.
// Opposing actions in the same frame cancel out.
func (f InputFrame) Axis() (x, y float64) {
	if f.Has(ActionRight) {
		x++
	}
	if f.Has(ActionLeft) {
		x--
	}
	if f.Has(ActionUp) {
		y++
	}
	if f.Has(ActionDown) {
		y--
	}
	return x, y
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
