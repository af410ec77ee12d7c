package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLetter         // any printable key, carried in InputEvent.Rune
	ActionDelete         // Backspace - remove last letter
	ActionSubmit         // Enter - submit the current row
	ActionRestart        // R - new game, only after the game has ended
	ActionQuit           // Ctrl+C, Esc - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLetter:
		return "Letter"
	case ActionDelete:
		return "Delete"
	case ActionSubmit:
		return "Submit"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one translated key press.
type InputEvent struct {
	Action Action
	Rune   rune // set for ActionLetter
}
