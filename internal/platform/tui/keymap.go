package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// KeyMap holds the key bindings and translates key messages to actions.
// It also implements help.KeyMap for the help line.
type KeyMap struct {
	Letter  key.Binding
	Delete  key.Binding
	Submit  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings. Restart starts disabled and is
// enabled by the model once the game ends, since R is also a letter.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Letter: key.NewBinding(
			key.WithKeys(letterKeys()...),
			key.WithHelp("a-z", "type"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
	km.Restart.SetEnabled(false)
	return km
}

func letterKeys() []string {
	keys := make([]string, 0, 52)
	for r := 'a'; r <= 'z'; r++ {
		keys = append(keys, string(r), string(r-'a'+'A'))
	}
	return keys
}

// Map translates a key message. gameOver selects whether R restarts the
// game or is typed as a letter.
func (k KeyMap) Map(msg tea.KeyMsg, gameOver bool) core.InputEvent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.InputEvent{Action: core.ActionQuit}
	case key.Matches(msg, k.Delete):
		return core.InputEvent{Action: core.ActionDelete}
	case key.Matches(msg, k.Submit):
		return core.InputEvent{Action: core.ActionSubmit}
	case gameOver && matchesKeys(msg, k.Restart):
		return core.InputEvent{Action: core.ActionRestart}
	case key.Matches(msg, k.Letter):
		return core.InputEvent{Action: core.ActionLetter, Rune: msg.Runes[0]}
	// Other printable runes go to the engine, which rejects them with a message.
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt:
		return core.InputEvent{Action: core.ActionLetter, Rune: msg.Runes[0]}
	case msg.Type == tea.KeySpace:
		return core.InputEvent{Action: core.ActionLetter, Rune: ' '}
	}
	return core.InputEvent{Action: core.ActionNone}
}

// matchesKeys ignores the binding's enabled state, which only drives help.
func matchesKeys(msg tea.KeyMsg, b key.Binding) bool {
	s := msg.String()
	for _, k := range b.Keys() {
		if s == k {
			return true
		}
	}
	return false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Letter, k.Delete, k.Submit, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
