package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

func TestPlainFeedback(t *testing.T) {
	tests := []struct {
		answer, guess, want string
	}{
		{"CRANE", "CRATE", "CCCAC"},
		{"ALLOW", "LOLLY", "PPCAA"},
		{"CRANE", "BUILT", "AAAAA"},
	}
	for _, tc := range tests {
		t.Run(tc.guess, func(t *testing.T) {
			assert.Equal(t, tc.want, plainFeedback(wordle.Score(tc.answer, tc.guess)))
		})
	}
}

func TestStyledTilesKeepsLetters(t *testing.T) {
	out := styledTiles("CRATE", wordle.Score("CRANE", "CRATE"), config.DefaultWordleConfig().UI.Theme)
	for _, r := range "CRATE" {
		assert.Contains(t, out, string(r))
	}
}

func TestPrintLists(t *testing.T) {
	lists := &words.Lists{
		Dictionary:    words.NewDictionary([]string{"CRANE", "CRATE", "SLATE"}),
		Pool:          words.NewPool([]string{"CRANE", "SLATE"}),
		AnswersSource: "answers.txt",
		AllowedSource: words.SourceEmbedded,
	}

	var buf bytes.Buffer
	printLists(&buf, lists, false)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "answers")
	assert.Contains(t, lines[2], "2")
	assert.Contains(t, lines[2], "answers.txt")
	assert.Contains(t, lines[3], "3")
	assert.Contains(t, lines[3], "embedded")

	buf.Reset()
	printLists(&buf, lists, true)
	assert.True(t, strings.HasSuffix(buf.String(), "\nCRANE\nSLATE\n"))
}

func TestScoreCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"score", "crane", "eerie", "--plain"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagScorePlain = false
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "AAPAC\n", buf.String())
}

func TestScoreCommandLengthMismatch(t *testing.T) {
	rootCmd.SetArgs([]string{"score", "crane", "cranes"})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	})

	assert.ErrorContains(t, rootCmd.Execute(), "same length")
}
