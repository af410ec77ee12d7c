// Package config provides YAML-based configuration loading for the game:
// board dimensions, word list sources, display options and logging.
package config

// WordleConfig contains all configuration for a game session.
type WordleConfig struct {
	Board BoardConfig `yaml:"board"`
	Words WordsConfig `yaml:"words"`
	UI    UIConfig    `yaml:"ui"`
	Log   LogConfig   `yaml:"log"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Rows       int `yaml:"rows"`        // Number of guesses allowed
	WordLength int `yaml:"word_length"` // Letters per word
}

// WordsConfig selects the word lists.
type WordsConfig struct {
	AnswersFile    string `yaml:"answers_file"`
	AllowedFile    string `yaml:"allowed_file"`
	IncludeAnswers bool   `yaml:"include_answers"` // Answers are always valid guesses
}

// UIConfig defines presentation options.
type UIConfig struct {
	ShowAnswer bool        `yaml:"show_answer"` // Reveal the answer when the game ends
	Theme      ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds ANSI 256-color codes for tile states.
type ThemeConfig struct {
	Correct string `yaml:"correct"`
	Present string `yaml:"present"`
	Absent  string `yaml:"absent"`
	Pending string `yaml:"pending"` // Placeholder on empty tiles
	Text    string `yaml:"text"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards log output
}
