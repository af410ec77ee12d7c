// wordle is a terminal word-guessing game.
//
// Usage:
//
//	wordle                       - Play a game (same as "wordle play")
//	wordle play                  - Play a game
//	wordle words                 - Show the loaded word lists
//	wordle score <answer> <guess> - Print the feedback for one guess
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--env-file <path>   - Dotenv file with WORDLE_* overrides (default: .env)
//	--seed <value>      - Set RNG seed for reproducible answers
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagEnvFile  string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - Guess the hidden word in your terminal",
	Long: `Wordle is a terminal word-guessing game. Guess the hidden five-letter
word in six tries. After each guess the tiles show which letters are in the
right spot, which are in the word elsewhere, and which are not in it.

Available commands:
  play     - Play a game (default)
  words    - Show the loaded word lists
  score    - Print the feedback for a single guess

Examples:
  wordle
  wordle play --seed 42
  wordle words
  wordle score crane crate`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with WORDLE_* overrides")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoreCmd)
}
