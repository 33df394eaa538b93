package core

// Action represents a semantic in-game input action, abstracted from
// physical key presses. The platform maps keys (and mouse clicks) to
// actions and dispatches them to the engine as discrete events; there is
// no per-tick input sampling, because a selection must apply the moment
// it happens.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, K - move the cell cursor up
	ActionDown           // S, Down arrow, J - move the cell cursor down
	ActionLeft           // A, Left arrow, H - move the cell cursor left
	ActionRight          // D, Right arrow, L - move the cell cursor right
	ActionConfirm        // Enter, Space - pick the cell under the cursor
	ActionInfo           // I, Escape - leave the round for the info screen
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionInfo:
		return "Info"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
