package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muurk/zooskeys/internal/keyboard"
	"github.com/muurk/zooskeys/internal/logging"
)

// DefaultMaxGuesses is the classic number of attempts per round.
const DefaultMaxGuesses = 6

// State is the coarse state of a round
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Guess validation errors
var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotInList    = errors.New("not in word list")
)

// Row is one scored guess
type Row struct {
	Word   string
	Colors []keyboard.Color
}

// Feedback returns the row's colors as tokens for keyboard.Controller
func (r Row) Feedback() []string {
	out := make([]string, len(r.Colors))
	for i, c := range r.Colors {
		out[i] = c.String()
	}
	return out
}

// Game holds the state of a single round.
type Game struct {
	answer     string
	maxGuesses int
	words      *WordList
	rows       []Row
	state      State
}

// New starts a round. An empty answer picks one at random from words; a nil
// words uses the embedded list. maxGuesses below 1 means DefaultMaxGuesses.
func New(answer string, words *WordList, maxGuesses int) *Game {
	if words == nil {
		words = DefaultWordList()
	}
	if maxGuesses < 1 {
		maxGuesses = DefaultMaxGuesses
	}
	if answer == "" {
		answer = words.Random()
	}
	return &Game{
		answer:     strings.ToLower(answer),
		maxGuesses: maxGuesses,
		words:      words,
		state:      StatePlaying,
	}
}

// Guess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - The round must not be finished.
//   - The guess must be exactly WordLength ASCII letters.
//   - The guess must be in the word list, unless it is the answer itself.
func (g *Game) Guess(word string) (Row, State, error) {
	if g.state != StatePlaying {
		return Row{}, g.state, ErrFinished
	}

	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != WordLength || !isAlpha(word) {
		return Row{}, g.state, fmt.Errorf("%w: %q must be %d letters", ErrInvalidGuess, word, WordLength)
	}
	if word != g.answer && !g.words.Allowed(word) {
		return Row{}, g.state, fmt.Errorf("%w: %q", ErrNotInList, word)
	}

	row := Row{Word: word, Colors: Score(g.answer, word)}
	g.rows = append(g.rows, row)

	switch {
	case word == g.answer:
		g.state = StateWon
	case len(g.rows) >= g.maxGuesses:
		g.state = StateLost
	}

	logging.LogGuess(word, len(g.rows), string(g.state))
	return row, g.state, nil
}

// Answer returns the solution (lowercase)
func (g *Game) Answer() string { return g.answer }

// Rows returns the scored guesses so far
func (g *Game) Rows() []Row {
	out := make([]Row, len(g.rows))
	copy(out, g.rows)
	return out
}

// State returns the current round state
func (g *Game) State() State { return g.state }

// MaxGuesses returns the number of attempts allowed
func (g *Game) MaxGuesses() int { return g.maxGuesses }

// Remaining returns how many guesses are left
func (g *Game) Remaining() int { return g.maxGuesses - len(g.rows) }

// Score implements the standard two-pass scoring algorithm.
//
// Pass 1 marks exact matches correct and counts the remaining answer letters.
// Pass 2 marks each other guess letter present while unmatched copies of it
// remain in the answer, otherwise absent. This handles repeated letters in
// both answer and guess. Inputs must be lowercase and of equal length.
func Score(answer, guess string) []keyboard.Color {
	n := len(guess)
	res := make([]keyboard.Color, n)
	if len(answer) != n {
		return res
	}

	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = keyboard.ColorCorrect
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == keyboard.ColorCorrect {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			res[i] = keyboard.ColorPresent
			counts[j]--
		} else {
			res[i] = keyboard.ColorAbsent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25, or -1
func idx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}
