package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/zooskeys/internal/config"
	"github.com/muurk/zooskeys/internal/game"
	"github.com/muurk/zooskeys/internal/keyboard"
	"github.com/muurk/zooskeys/internal/ui"
)

// scoreOptions configures a non-interactive round
type scoreOptions struct {
	Answer     string
	Layout     string
	MaxGuesses int
	Strict     bool // guesses must be in the word list
	WordsPath  string
	Format     string
}

var scoreOpts scoreOptions

// scoreCmd scores guesses against a known answer
var scoreCmd = &cobra.Command{
	Use:   "score GUESS...",
	Short: "Score guesses against an answer and show the keyboard",
	Long: `Play a round non-interactively: every guess is scored against the
answer, drawn as a board row and applied to the keyboard.

Without --strict any five letter word is accepted as a guess.`,
	Example: `  # Two guesses against CRANE
  zooskeys score --answer crane slate trace

  # Only accept dictionary words
  zooskeys score --answer crane --strict slate crane`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := scoreRound(cmd.OutOrStdout(), scoreOpts, args, settings)
		return err
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreOpts.Answer, "answer", "", "The answer to score against (required)")
	scoreCmd.Flags().StringVar(&scoreOpts.Layout, "layout", "", "Keyboard layout ("+layoutList()+")")
	scoreCmd.Flags().IntVar(&scoreOpts.MaxGuesses, "max-guesses", 0, "Attempts allowed (defaults to the config)")
	scoreCmd.Flags().BoolVar(&scoreOpts.Strict, "strict", false, "Reject guesses that are not in the word list")
	scoreCmd.Flags().StringVar(&scoreOpts.WordsPath, "words", "", "Word list used with --strict")
	scoreCmd.Flags().StringVar(&scoreOpts.Format, "format", formatKeys, "Keyboard output (keys, summary, both)")
	_ = scoreCmd.MarkFlagRequired("answer")

	rootCmd.AddCommand(scoreCmd)
}

// scoreRound plays guesses against opts.Answer and prints the board, the
// keyboard and a result box. It stops at the first rejected guess.
func scoreRound(w io.Writer, opts scoreOptions, guesses []string, s *config.Settings) (game.State, error) {
	if s == nil {
		s = config.NewSettings()
	}
	if err := checkWord(opts.Answer); err != nil {
		return "", fmt.Errorf("--answer: %w", err)
	}
	if err := checkFormat(opts.Format); err != nil {
		return "", err
	}

	limit := s.Game.MaxGuesses
	if opts.MaxGuesses > 0 {
		limit = opts.MaxGuesses
	}
	if len(guesses) > limit {
		return "", fmt.Errorf("%d guesses given but only %d allowed", len(guesses), limit)
	}

	layout, err := resolveLayout(opts.Layout, s)
	if err != nil {
		return "", err
	}

	var words *game.WordList
	if opts.Strict {
		words, err = resolveWords(opts.WordsPath, s)
	} else {
		words, err = game.NewWordList([]string{opts.Answer}, guesses...)
	}
	if err != nil {
		return "", err
	}

	g := game.New(opts.Answer, words, limit)
	surface := ui.NewKeyboardSurface()
	kb := keyboard.Mount(surface, layout, nil).(*keyboard.Keyboard)

	p := ui.NewPrinter(w)
	p.PrintHeader("SCORE", "zooskeys score "+strings.Join(guesses, " "),
		ui.Param{Key: "Layout", Value: layout.Name},
		ui.Param{Key: "Attempts", Value: strconv.Itoa(limit)},
	)
	p.Newline()

	state := game.StatePlaying
	for _, guess := range guesses {
		row, st, err := g.Guess(guess)
		if err != nil {
			p.PrintResult(ui.NewFailureResult("Guess rejected", err))
			return state, err
		}
		state = st
		kb.ApplyFeedback(row.Word, row.Feedback())
		p.Println(ui.RenderTiles([]rune(strings.ToUpper(row.Word)), row.Colors))
	}

	p.Println(ui.AttemptsBar(len(g.Rows()), limit, 40))
	printKeyboardState(p, surface, kb.Tracker(), opts.Format)
	p.Newline()
	p.PrintResult(roundResult(g))
	return state, nil
}

func roundResult(g *game.Game) *ui.Result {
	answer := ui.Param{Key: "Answer", Value: strings.ToUpper(g.Answer())}
	used := len(g.Rows())

	switch g.State() {
	case game.StateWon:
		return ui.NewResult(ui.ResultWon, fmt.Sprintf("Solved in %d", used), answer)
	case game.StateLost:
		return ui.NewResult(ui.ResultLost, fmt.Sprintf("Not solved in %d", used), answer)
	default:
		return ui.NewResult(ui.ResultInProgress, fmt.Sprintf("%d of %d attempts used", used, g.MaxGuesses()),
			ui.Param{Key: "Remaining", Value: strconv.Itoa(g.Remaining())})
	}
}
