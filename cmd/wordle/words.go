package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/words"
)

var flagWordsList bool

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the loaded word lists",
	Long: `Shows where the answer pool and the dictionary of valid guesses are
loaded from and how many words each holds.

Examples:
  wordle words
  wordle words --list
  WORDLE_ALLOWED_FILE=allowed.txt wordle words`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().BoolVar(&flagWordsList, "list", false, "Print every answer in the pool")
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lists, err := loadWords(cfg)
	if err != nil {
		return err
	}
	printLists(cmd.OutOrStdout(), lists, flagWordsList)
	return nil
}

func printLists(w io.Writer, lists *words.Lists, all bool) {
	rows := [][3]string{
		{"List", "Words", "Source"},
		{"----", "-----", "------"},
		{"answers", fmt.Sprint(lists.Pool.Len()), lists.AnswersSource},
		{"allowed", fmt.Sprint(lists.Dictionary.Len()), lists.AllowedSource},
	}

	// Calculate column widths
	var widths [2]int
	for _, r := range rows {
		for i := range widths {
			widths[i] = max(widths[i], len(r[i]))
		}
	}

	for _, r := range rows {
		fmt.Fprintf(w, "  %-*s  %*s  %s\n", widths[0], r[0], widths[1], r[1], r[2])
	}

	if all {
		fmt.Fprintln(w)
		for _, word := range lists.Pool.Words() {
			fmt.Fprintln(w, word)
		}
	}
}
