package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/zooskeys/internal/config"
	"github.com/muurk/zooskeys/internal/game"
	"github.com/muurk/zooskeys/internal/keyboard"
	"github.com/muurk/zooskeys/internal/tui"
)

// Play command flags
var (
	layoutName string
	answer     string
	maxGuesses int
	wordsPath  string
	noHelp     bool
)

// playCmd starts an interactive game
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Start an interactive game.

Type letters to fill the current row, enter to submit and backspace to
delete. ctrl+n starts a new round, esc quits.`,
	Example: `  # Play with the default settings
  zooskeys play

  # Alphabetical keyboard and eight attempts
  zooskeys play --layout alphabetical --max-guesses 8

  # Use your own word list
  zooskeys play --words ~/words.txt`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
	rootCmd.AddCommand(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&layoutName, "layout", "", "Keyboard layout ("+layoutList()+")")
	cmd.Flags().StringVar(&answer, "answer", "", "Fixed answer for the first round")
	cmd.Flags().IntVar(&maxGuesses, "max-guesses", 0, "Attempts per round")
	cmd.Flags().StringVar(&wordsPath, "words", "", "Word list file, one word per line")
	cmd.Flags().BoolVar(&noHelp, "no-help", false, "Hide the key help footer")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts, err := playOptions(settings)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}
	return nil
}

// playOptions merges flags over settings
func playOptions(s *config.Settings) (tui.Options, error) {
	if s == nil {
		s = config.NewSettings()
	}

	layout, err := resolveLayout(layoutName, s)
	if err != nil {
		return tui.Options{}, err
	}

	opts := tui.Options{
		Layout:     layout,
		MaxGuesses: s.Game.MaxGuesses,
		ShowHelp:   s.Game.ShowHelp && !noHelp,
	}
	if maxGuesses != 0 {
		if maxGuesses < config.MinGuesses || maxGuesses > config.MaxGuesses {
			return tui.Options{}, fmt.Errorf("--max-guesses must be between %d and %d", config.MinGuesses, config.MaxGuesses)
		}
		opts.MaxGuesses = maxGuesses
	}

	if answer != "" {
		if err := checkWord(answer); err != nil {
			return tui.Options{}, fmt.Errorf("--answer: %w", err)
		}
		opts.Answer = answer
	}

	opts.Words, err = resolveWords(wordsPath, s)
	if err != nil {
		return tui.Options{}, err
	}
	return opts, nil
}

// resolveLayout picks the flag value, then the configured layout
func resolveLayout(name string, s *config.Settings) (keyboard.Layout, error) {
	if name != "" {
		return keyboard.LayoutByName(name)
	}
	return s.Layout(), nil
}

// resolveWords loads a custom word list when one is named; nil means the
// embedded list.
func resolveWords(path string, s *config.Settings) (*game.WordList, error) {
	if path == "" && s != nil && s.Game != nil {
		path = s.Game.WordList
	}
	if path == "" {
		return nil, nil
	}
	return game.LoadWordList(path)
}

// checkWord accepts exactly WordLength ASCII letters in either case
func checkWord(w string) error {
	if len(w) != game.WordLength {
		return fmt.Errorf("%q must be %d letters", w, game.WordLength)
	}
	for _, r := range w {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return fmt.Errorf("%q must contain only letters", w)
		}
	}
	return nil
}

func layoutList() string {
	return strings.Join(keyboard.LayoutNames(), ", ")
}
