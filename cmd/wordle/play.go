package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/logging"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game with a random answer.

Controls:
  A-Z        - Type a letter
  Backspace  - Delete the last letter
  Enter      - Submit the guess
  R          - New game (after the game ends)
  Esc/Ctrl+C - Quit

Examples:
  wordle play
  wordle play --seed 42
  wordle play --config ./my-wordle.yaml
  WORDLE_ANSWERS_FILE=answers.txt wordle play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	lists, err := loadWords(cfg)
	if err != nil {
		logger.Error("cannot load word lists", "err", err)
		return err
	}
	logger.Debug("word lists loaded",
		"answers", lists.Pool.Len(), "answers_source", lists.AnswersSource,
		"allowed", lists.Dictionary.Len(), "allowed_source", lists.AllowedSource,
	)

	game, err := wordle.New(lists.Dictionary, lists.Pool,
		wordle.WithRows(cfg.Board.Rows),
		wordle.WithWordLength(cfg.Board.WordLength),
		wordle.WithSeed(flagSeed),
	)
	if err != nil {
		logger.Error("cannot start game", "err", err)
		return err
	}

	// Get terminal size
	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if need := tui.BoardHeight(cfg.Board.Rows); rt.ScreenH-1 < need {
		logger.Warn("terminal too short for the board", "height", rt.ScreenH, "need", need+1)
	}

	if err := tui.Run(game, rt, tui.Options{
		ShowAnswer: cfg.UI.ShowAnswer,
		Theme:      cfg.UI.Theme,
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
