package main

import (
	"fmt"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// loadConfig resolves the configuration: file, then env, then flags.
func loadConfig() (config.WordleConfig, error) {
	cfg, err := config.LoadWordle(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, flagEnvFile); err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadWords reads the word lists selected by cfg.
func loadWords(cfg config.WordleConfig) (*words.Lists, error) {
	return words.Load(words.Options{
		AnswersFile:    cfg.Words.AnswersFile,
		AllowedFile:    cfg.Words.AllowedFile,
		IncludeAnswers: cfg.Words.IncludeAnswers,
	})
}
