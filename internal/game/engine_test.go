package game

import (
	"errors"
	"reflect"
	"testing"

	"github.com/muurk/zooskeys/internal/keyboard"
)

const (
	C = keyboard.ColorCorrect
	P = keyboard.ColorPresent
	A = keyboard.ColorAbsent
)

func TestScore(t *testing.T) {
	tests := []struct {
		answer string
		guess  string
		want   []keyboard.Color
	}{
		{"crane", "crane", []keyboard.Color{C, C, C, C, C}},
		{"crane", "about", []keyboard.Color{P, A, A, A, A}},
		{"train", "crane", []keyboard.Color{A, C, C, P, A}},
		// the only E in the answer is matched exactly, so the other Es are absent
		{"crane", "eerie", []keyboard.Color{A, A, P, A, C}},
		// repeated guess letter where the answer has two
		{"sassy", "sissy", []keyboard.Color{C, A, C, C, C}},
		{"abbey", "babes", []keyboard.Color{P, P, C, C, A}},
		{"crane", "cra", []keyboard.Color{keyboard.ColorUnknown, keyboard.ColorUnknown, keyboard.ColorUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.answer+"/"+tt.guess, func(t *testing.T) {
			if got := Score(tt.answer, tt.guess); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.answer, tt.guess, got, tt.want)
			}
		})
	}
}

func TestGuessWins(t *testing.T) {
	g := New("crane", nil, 6)

	row, state, err := g.Guess("slate")
	if err != nil {
		t.Fatalf("Guess(slate) error = %v", err)
	}
	if state != StatePlaying {
		t.Errorf("state = %v, want playing", state)
	}
	if want := []string{"absent", "absent", "correct", "absent", "correct"}; !reflect.DeepEqual(row.Feedback(), want) {
		t.Errorf("Feedback() = %v, want %v", row.Feedback(), want)
	}

	if _, state, _ = g.Guess("CRANE"); state != StateWon {
		t.Errorf("state = %v, want won", state)
	}
	if _, _, err := g.Guess("crane"); !errors.Is(err, ErrFinished) {
		t.Errorf("guess after win error = %v, want ErrFinished", err)
	}
	if len(g.Rows()) != 2 {
		t.Errorf("Rows() = %d, want 2", len(g.Rows()))
	}
}

func TestGuessLoses(t *testing.T) {
	g := New("crane", nil, 2)

	g.Guess("about")
	_, state, err := g.Guess("slate")
	if err != nil {
		t.Fatalf("Guess() error = %v", err)
	}
	if state != StateLost {
		t.Errorf("state = %v, want lost", state)
	}
	if g.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", g.Remaining())
	}
}

func TestGuessValidation(t *testing.T) {
	tests := []struct {
		guess string
		want  error
	}{
		{"cran", ErrInvalidGuess},
		{"cranes", ErrInvalidGuess},
		{"cr4ne", ErrInvalidGuess},
		{"zzzzz", ErrNotInList},
	}

	for _, tt := range tests {
		t.Run(tt.guess, func(t *testing.T) {
			g := New("crane", nil, 6)
			if _, _, err := g.Guess(tt.guess); !errors.Is(err, tt.want) {
				t.Errorf("Guess(%q) error = %v, want %v", tt.guess, err, tt.want)
			}
			if len(g.Rows()) != 0 {
				t.Error("rejected guess should not be recorded")
			}
		})
	}
}

func TestAnswerOutsideListIsAccepted(t *testing.T) {
	g := New("qajaq", nil, 6)
	if _, state, err := g.Guess("qajaq"); err != nil || state != StateWon {
		t.Errorf("Guess(answer) = %v, %v, want won", state, err)
	}
}

func TestNewDefaults(t *testing.T) {
	g := New("", nil, 0)

	if g.MaxGuesses() != DefaultMaxGuesses {
		t.Errorf("MaxGuesses() = %d, want %d", g.MaxGuesses(), DefaultMaxGuesses)
	}
	if !DefaultWordList().IsAnswer(g.Answer()) {
		t.Errorf("random answer %q is not in the default list", g.Answer())
	}
}
