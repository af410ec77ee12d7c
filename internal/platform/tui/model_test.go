package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// firstPicker always picks the first pool entry.
type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

func newTestModel(t *testing.T, logBuf *bytes.Buffer) Model {
	t.Helper()
	game, err := wordle.New(
		words.NewDictionary([]string{"CRANE", "CRATE", "SLATE"}),
		words.NewPool([]string{"CRANE"}),
		wordle.WithPicker(firstPicker{}),
	)
	require.NoError(t, err)

	opts := Options{
		ShowAnswer: true,
		Theme:      config.DefaultWordleConfig().UI.Theme,
	}
	if logBuf != nil {
		opts.Logger = log.NewWithOptions(logBuf, log.Options{Level: log.DebugLevel})
	}
	return NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 24}, opts)
}

func keyRunes(s string) []tea.KeyMsg {
	var out []tea.KeyMsg
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

var (
	enterKey     = tea.KeyMsg{Type: tea.KeyEnter}
	backspaceKey = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestModelTypesAndSubmits(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, keyRunes("crate")...)
	assert.Equal(t, "CRATE", m.Game().Row(0))

	m, _ = press(t, m, enterKey)
	assert.Equal(t, 1, m.Game().CurrentRow())
	assert.Empty(t, m.Message())
}

func TestModelAdvisoryMessages(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"delete on empty row", []tea.KeyMsg{backspaceKey}, "No letters to delete"},
		{"incomplete", append(keyRunes("cra"), enterKey), "Not enough letters"},
		{"not a word", append(keyRunes("crxne"), enterKey), "Not in word list"},
		{"row full", keyRunes("cranes"), "Row is full. Delete letters."},
		{"digit", keyRunes("1"), "Letters only"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			m, cmd := press(t, m, tc.keys...)
			assert.Equal(t, tc.want, m.Message())
			assert.NotNil(t, cmd, "advisory messages schedule their expiry")
		})
	}
}

func TestModelMessageExpiry(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = press(t, m, backspaceKey)
	first := m.messageID

	m, _ = press(t, m, backspaceKey)
	require.Equal(t, first+1, m.messageID)

	// Stale timer leaves the newer message alone.
	next, _ := m.Update(clearMessageMsg{id: first})
	m = next.(Model)
	assert.Equal(t, "No letters to delete", m.Message())

	next, _ = m.Update(clearMessageMsg{id: m.messageID})
	m = next.(Model)
	assert.Empty(t, m.Message())
}

func TestModelWinAndRestart(t *testing.T) {
	var logBuf bytes.Buffer
	m := newTestModel(t, &logBuf)

	m, _ = press(t, m, keyRunes("crane")...)
	m, _ = press(t, m, enterKey)
	require.Equal(t, wordle.StatusWon, m.Game().Status())
	assert.True(t, m.keys.Restart.Enabled())
	assert.Contains(t, logBuf.String(), "game over")

	view := m.View()
	assert.Contains(t, view, "You won in 1/6!")
	assert.Contains(t, view, "The word was CRANE")

	// Letters are ignored once the game is over; R restarts.
	m, _ = press(t, m, keyRunes("x")...)
	assert.Equal(t, wordle.StatusWon, m.Game().Status())

	m, _ = press(t, m, keyRunes("r")...)
	assert.Equal(t, wordle.StatusInProgress, m.Game().Status())
	assert.Equal(t, 0, m.Game().CurrentRow())
	assert.False(t, m.keys.Restart.Enabled())
	assert.NotContains(t, m.View(), "The word was")
}

func TestModelLogsGuessesAtGameOver(t *testing.T) {
	var logBuf bytes.Buffer
	m := newTestModel(t, nil)
	m.logger = log.NewWithOptions(&logBuf, log.Options{Level: log.InfoLevel})

	m, _ = press(t, m, keyRunes("crate")...)
	m, _ = press(t, m, enterKey)
	m, _ = press(t, m, keyRunes("crane")...)
	press(t, m, enterKey)

	out := logBuf.String()
	assert.Contains(t, out, "game over")
	assert.NotContains(t, out, "guess accepted")
	assert.Contains(t, out, "CRATE", "every guess is logged with the result")
}

func TestModelRIsALetterWhilePlaying(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = press(t, m, keyRunes("r")...)
	assert.Equal(t, "R    ", m.Game().Row(0))
}

func TestModelLose(t *testing.T) {
	m := newTestModel(t, nil)
	for range m.Game().Rows() {
		m, _ = press(t, m, keyRunes("slate")...)
		m, _ = press(t, m, enterKey)
	}
	require.Equal(t, wordle.StatusLost, m.Game().Status())
	assert.Contains(t, m.View(), "You lost!")
}

func TestModelLogsIgnoredInput(t *testing.T) {
	var logBuf bytes.Buffer
	m := newTestModel(t, &logBuf)
	press(t, m, backspaceKey)
	assert.Contains(t, logBuf.String(), "input ignored")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(Model)
	assert.Equal(t, 60, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height())
	assert.True(t, strings.Contains(m.View(), "W O R D L E"))
}
