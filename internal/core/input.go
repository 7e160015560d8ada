package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionRotate        // Up, W - rotate the falling piece
	ActionLeft          // Left, A - shift one column left
	ActionRight         // Right, D - shift one column right
	ActionDrop          // Down, S, Space - hard drop
	ActionQuit          // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
