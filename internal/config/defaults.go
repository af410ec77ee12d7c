package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultWordleYAML []byte

// DefaultWordleConfig returns the default configuration.
func DefaultWordleConfig() WordleConfig {
	return WordleConfig{
		Board: BoardConfig{
			Rows:       6,
			WordLength: 5,
		},
		Words: WordsConfig{
			IncludeAnswers: true,
		},
		UI: UIConfig{
			ShowAnswer: true,
			Theme: ThemeConfig{
				Correct: "2",
				Present: "3",
				Absent:  "240",
				Pending: "245",
				Text:    "15",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
