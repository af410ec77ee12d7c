package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var flagScorePlain bool

var scoreCmd = &cobra.Command{
	Use:   "score <answer> <guess>",
	Short: "Print the feedback for one guess",
	Long: `Scores a guess against an answer and prints the colored tiles, or
one letter per tile with --plain: C for correct, P for present, A for absent.

Examples:
  wordle score crane crate
  wordle score allow lolly --plain`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagScorePlain, "plain", false, "Print C/P/A codes instead of colored tiles")
}

func runScore(cmd *cobra.Command, args []string) error {
	answer, guess := words.Normalize(args[0]), words.Normalize(args[1])
	if utf8.RuneCountInString(answer) != utf8.RuneCountInString(guess) {
		return fmt.Errorf("answer and guess must have the same length: %q, %q", answer, guess)
	}

	fb := wordle.Score(answer, guess)
	if flagScorePlain {
		fmt.Fprintln(cmd.OutOrStdout(), plainFeedback(fb))
		return nil
	}

	theme := config.DefaultWordleConfig().UI.Theme
	if cfg, err := config.LoadWordle(flagConfig); err == nil {
		theme = cfg.UI.Theme
	}
	fmt.Fprintln(cmd.OutOrStdout(), styledTiles(guess, fb, theme))
	return nil
}

func plainFeedback(fb []wordle.Feedback) string {
	var sb strings.Builder
	for _, f := range fb {
		switch f {
		case wordle.FeedbackCorrect:
			sb.WriteByte('C')
		case wordle.FeedbackPresent:
			sb.WriteByte('P')
		default:
			sb.WriteByte('A')
		}
	}
	return sb.String()
}

func styledTiles(guess string, fb []wordle.Feedback, theme config.ThemeConfig) string {
	tile := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(theme.Text)).
			Bold(true).
			Padding(0, 1)
	}
	styles := map[wordle.Feedback]lipgloss.Style{
		wordle.FeedbackCorrect: tile(theme.Correct),
		wordle.FeedbackPresent: tile(theme.Present),
		wordle.FeedbackAbsent:  tile(theme.Absent),
	}

	tiles := make([]string, 0, len(fb))
	for i, r := range []rune(guess) {
		tiles = append(tiles, styles[fb[i]].Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
