package core

// Action represents a semantic host action, abstracted from physical key presses.
// Paddle keys are not actions: they are forwarded to the game as raw key names.
type Action int

const (
	ActionNone  Action = iota
	ActionPause        // P - pause/unpause game
	ActionHelp         // ? - toggle the help line
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
