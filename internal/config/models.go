package config

import (
	"fmt"

	"github.com/muurk/zooskeys/internal/keyboard"
)

// CurrentVersion is the settings file format version
const CurrentVersion = 1

// Guess limits accepted in the settings file
const (
	MinGuesses = 1
	MaxGuesses = 12
)

// Settings represents the entire user configuration file.
type Settings struct {
	Version int           `yaml:"version"`
	Game    *GamePrefs    `yaml:"game,omitempty"`
	Logging *LoggingPrefs `yaml:"logging,omitempty"`
}

// GamePrefs holds gameplay and keyboard preferences.
type GamePrefs struct {
	Layout     string `yaml:"layout"`              // Keyboard layout name ("qwerty", "alphabetical")
	MaxGuesses int    `yaml:"max_guesses"`         // Attempts per round
	WordList   string `yaml:"word_list,omitempty"` // Optional path to a custom word list
	ShowHelp   bool   `yaml:"show_help"`           // Show the key help footer
}

// LoggingPrefs holds logging preferences. Environment variables take
// precedence over these values.
type LoggingPrefs struct {
	Level string `yaml:"level,omitempty"` // "debug", "info", "warn", "error"; empty disables logging
	File  string `yaml:"file,omitempty"`  // Log file; the game screen owns stdout
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Game:    defaultGamePrefs(),
		Logging: &LoggingPrefs{},
	}
}

func defaultGamePrefs() *GamePrefs {
	return &GamePrefs{
		Layout:     "qwerty",
		MaxGuesses: 6,
		ShowHelp:   true,
	}
}

// applyDefaults fills sections missing from a partially written file.
func (s *Settings) applyDefaults() {
	if s.Game == nil {
		s.Game = defaultGamePrefs()
	}
	if s.Game.Layout == "" {
		s.Game.Layout = "qwerty"
	}
	if s.Game.MaxGuesses == 0 {
		s.Game.MaxGuesses = 6
	}
	if s.Logging == nil {
		s.Logging = &LoggingPrefs{}
	}
}

// Validate checks that every value is usable.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if s.Game == nil {
		return nil
	}
	if _, err := keyboard.LayoutByName(s.Game.Layout); err != nil {
		return fmt.Errorf("game.layout: %w", err)
	}
	if s.Game.MaxGuesses < MinGuesses || s.Game.MaxGuesses > MaxGuesses {
		return fmt.Errorf("game.max_guesses must be between %d and %d, got %d", MinGuesses, MaxGuesses, s.Game.MaxGuesses)
	}
	return nil
}

// Layout resolves the configured keyboard layout
func (s *Settings) Layout() keyboard.Layout {
	if s.Game == nil {
		return keyboard.QWERTY()
	}
	l, err := keyboard.LayoutByName(s.Game.Layout)
	if err != nil {
		return keyboard.QWERTY()
	}
	return l
}
