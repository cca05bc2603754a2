package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // k, Up arrow - cursor up
	ActionDown             // j, Down arrow - cursor down
	ActionLeft             // h, Left arrow - cursor left
	ActionRight            // l, Right arrow - cursor right
	ActionClick            // Enter, Space - click whatever is under the cursor
	ActionClickTile        // m - click the tile under the cursor, ignoring its piece
	ActionRestart          // r - reset the board
	ActionHelp             // ? - toggle full help
	ActionQuit             // q, Ctrl+C - exit
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
	case ActionClick:
		return "Click"
	case ActionClickTile:
		return "ClickTile"
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
