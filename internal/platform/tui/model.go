package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Options configures the presentation layer.
type Options struct {
	ShowAnswer bool
	Theme      config.ThemeConfig
	Logger     *log.Logger
}

// Model is the Bubble Tea model driving a wordle.Game.
type Model struct {
	game       *wordle.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	theme      Theme
	logger     *log.Logger
	showAnswer bool

	message   string
	messageID int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *wordle.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 0)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		theme:      NewTheme(opts.Theme),
		logger:     logger,
		showAnswer: opts.ShowAnswer,
	}
}

// Init implements tea.Model. The game is already started by wordle.New.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "rows", m.game.Rows(), "word_length", m.game.WordLength(), "seed", m.config.Seed)
	return tea.SetWindowTitle("Wordle")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case clearMessageMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey forwards a key press to the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.Map(msg, m.game.Status().Over())

	var err error
	switch ev.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.game.Reset()
		m.keys.Restart.SetEnabled(false)
		m.message = ""
		m.logger.Info("new game")
		return m, nil

	case core.ActionDelete:
		err = m.game.DeleteLetter()

	case core.ActionSubmit:
		err = m.game.SubmitGuess()
		if err == nil && m.game.Status().Over() {
			m.keys.Restart.SetEnabled(true)
			m.message = ""
			m.logger.Info("game over",
				"status", m.game.Status(),
				"guesses", m.game.Guesses(),
				"answer", m.game.Answer(),
			)
			return m, nil
		}
		if err == nil {
			m.logger.Debug("guess accepted", "row", m.game.CurrentRow()-1, "guess", m.game.Row(m.game.CurrentRow()-1))
		}

	case core.ActionLetter:
		err = m.game.InputLetter(ev.Rune)

	default:
		return m, nil
	}

	if err != nil {
		m.logger.Debug("input ignored", "action", ev.Action, "err", err)
		return m.flash(messageFor(err))
	}
	return m, nil
}

// flash shows an advisory message that expires after messageTTL.
func (m Model) flash(text string) (tea.Model, tea.Cmd) {
	m.message = text
	m.messageID++
	return m, clearMessageCmd(m.messageID, messageTTL)
}

// messageFor returns the player-facing text for an advisory engine error.
func messageFor(err error) string {
	switch {
	case errors.Is(err, wordle.ErrInvalidInput):
		return "Letters only"
	case errors.Is(err, wordle.ErrRowFull):
		return "Row is full. Delete letters."
	case errors.Is(err, wordle.ErrNothingToDelete):
		return "No letters to delete"
	case errors.Is(err, wordle.ErrIncompleteWord):
		return "Not enough letters"
	case errors.Is(err, wordle.ErrWordNotInDictionary):
		return "Not in word list"
	case errors.Is(err, wordle.ErrGameOver):
		return "Press R for a new game"
	default:
		return err.Error()
	}
}

// status returns the line drawn under the board.
func (m Model) status() Status {
	switch m.game.Status() {
	case wordle.StatusWon:
		return Status{
			Text:  fmt.Sprintf("You won in %d/%d! Press R to play again.", m.game.CurrentRow(), m.game.Rows()),
			Color: core.ColorWin,
		}
	case wordle.StatusLost:
		return Status{Text: "You lost! Press R to play again.", Color: core.ColorLose}
	}
	return Status{Text: m.message, Color: core.ColorMessage}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	DrawBoard(m.screen, m.game.Snapshot(), m.status(), m.showAnswer)

	return m.theme.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the engine driven by this model.
func (m Model) Game() *wordle.Game {
	return m.game
}

// Message returns the current advisory message, if any.
func (m Model) Message() string {
	return m.message
}

// Run starts the Bubble Tea program for the given game.
func Run(game *wordle.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
