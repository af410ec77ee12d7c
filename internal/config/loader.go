package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvAnswersFile = "WORDLE_ANSWERS_FILE"
	EnvAllowedFile = "WORDLE_ALLOWED_FILE"
	EnvRows        = "WORDLE_ROWS"
	EnvLogLevel    = "WORDLE_LOG_LEVEL"
	EnvLogFile     = "WORDLE_LOG_FILE"
)

// LoadWordle loads the game configuration.
// Search order: customPath -> ~/.wordle/configs/wordle.yaml -> ./configs/wordle.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are fine.
func LoadWordle(customPath string) (WordleConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultWordleConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("wordle.yaml"), filepath.Join("configs", "wordle.yaml")} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultWordleConfig()
	if err := yaml.Unmarshal(defaultWordleYAML, &cfg); err != nil {
		return DefaultWordleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (WordleConfig, bool) {
	cfg := DefaultWordleConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordle", "configs", filename)
}

// ApplyEnv loads envFile (if present) into the process environment and
// applies WORDLE_* overrides to cfg. Variables already set in the
// environment win over the file.
func ApplyEnv(cfg *WordleConfig, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvAnswersFile); v != "" {
		cfg.Words.AnswersFile = v
	}
	if v := os.Getenv(EnvAllowedFile); v != "" {
		cfg.Words.AllowedFile = v
	}
	if v := os.Getenv(EnvRows); v != "" {
		rows, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRows, v, err)
		}
		cfg.Board.Rows = rows
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// Validate checks values the game cannot start with.
func (c WordleConfig) Validate() error {
	if c.Board.Rows <= 0 {
		return fmt.Errorf("board.rows must be positive, got %d", c.Board.Rows)
	}
	if c.Board.WordLength <= 0 {
		return fmt.Errorf("board.word_length must be positive, got %d", c.Board.WordLength)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}
