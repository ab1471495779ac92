// Zooskeys is a terminal word-guessing game with a feedback keyboard.
//
// Every key on the on-screen keyboard shows what the previous guesses
// revealed about its letter: whether it is absent, present somewhere else, or
// correct, and at which positions.
//
// Usage:
//
//	zooskeys [command] [flags]
//
// Running without arguments starts a game.
// See 'zooskeys --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/zooskeys/internal/config"
	"github.com/muurk/zooskeys/internal/logging"
	"github.com/muurk/zooskeys/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

// settings is loaded once before any command runs
var settings *config.Settings

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zooskeys",
	Short: "Word guessing game with a feedback keyboard",
	Long: `A terminal word guessing game.

Guess the five letter word. After each guess the keyboard shows, for every
letter, whether it is absent, present elsewhere, or correct, and at which
positions it has been seen.

If no command is specified, a new game starts.`,
	Version:           version.Full(),
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runPlay,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file; overrides "+logging.LogFileEnvVar)

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "zooskeys %s\n", version.Full())
	},
}

// setup loads settings and starts logging. Flags win over the environment,
// which wins over the config file.
func setup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(configPath)
	if err != nil {
		return err
	}
	settings = s
	return initLogging(s.Logging)
}

func loadSettings(path string) (*config.Settings, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func initLogging(prefs *config.LoggingPrefs) error {
	level, file := resolveLogging(prefs)
	if err := logging.Initialize(level, file); err != nil {
		return err
	}
	logging.Debug("zooskeys starting")
	return nil
}

func resolveLogging(prefs *config.LoggingPrefs) (level, file string) {
	level, file = logLevel, logFile
	if prefs == nil {
		return level, file
	}
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = prefs.Level
	}
	if file == "" && os.Getenv(logging.LogFileEnvVar) == "" {
		file = prefs.File
	}
	return level, file
}
