// Package game implements a single round of the word-guessing game.
//
// A Game scores guesses against a hidden answer and produces the feedback
// rows the keyboard consumes:
//
//	g := game.New("", nil, game.DefaultMaxGuesses)
//	row, state, err := g.Guess("crane")
//	if err == nil {
//	    kb.ApplyFeedback(row.Word, row.Feedback())
//	}
//
// Rule violations are reported with the sentinel errors ErrFinished,
// ErrInvalidGuess and ErrNotInList, wrapped with details; use errors.Is.
//
// The embedded word list is small. Point the word_list setting at a file
// with one five-letter word per line to use a larger one.
package game
