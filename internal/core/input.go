package core

// Action represents a semantic game action, abstracted from physical keys
// and mouse buttons. The shell maps raw input to actions and the actions to
// engine commands.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space, Up, W - jump while playing, restart after game over
	ActionStart          // Enter, left click - the "Play" button
	ActionTap            // Left click release on the playfield
	ActionHistory        // Tab - toggle the session history panel
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionStart:
		return "Start"
	case ActionTap:
		return "Tap"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
