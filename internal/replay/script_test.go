package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/zooskeys/internal/keyboard"
)

// countingController records calls without a surface
type countingController struct {
	applied []string
	resets  int
}

func (c *countingController) ApplyFeedback(guess string, _ []string) {
	c.applied = append(c.applied, guess)
}
func (c *countingController) Reset()               { c.resets++ }
func (c *countingController) Activate(string) bool { return false }

const sample = `
layout: alphabetical
events:
  - guess: crane
    feedback: [absent, absent, correct, absent, present]
  - reset: true
  - guess: towel
    feedback: [green, orange, gray, gray, bogus]
`

func TestParseAndRun(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Layout != "alphabetical" || len(s.Events) != 3 {
		t.Fatalf("unexpected script: %+v", s)
	}

	c := &countingController{}
	st := s.Run(c)

	if st.Guesses != 2 || st.Resets != 1 {
		t.Errorf("Stats = %+v, want 2 guesses 1 reset", st)
	}
	if strings.Join(c.applied, ",") != "crane,towel" || c.resets != 1 {
		t.Errorf("calls = %v / %d", c.applied, c.resets)
	}
}

func TestRunOnRealKeyboard(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}

	tr := keyboard.NewTracker(keyboard.QWERTY())
	s.Run(trackerController{tr})

	// the reset wiped CRANE, so only TOWEL remains
	if e, _ := tr.Entry('A'); e.Status != keyboard.StatusUnset {
		t.Errorf("A status = %v, want unset after reset", e.Status)
	}
	if e, _ := tr.Entry('T'); e.Status != keyboard.StatusCorrect {
		t.Errorf("T status = %v, want correct", e.Status)
	}
	if e, _ := tr.Entry('L'); e.Status != keyboard.StatusUnset {
		t.Errorf("L status = %v, want unset (bogus token)", e.Status)
	}
}

// trackerController adapts a bare tracker for tests
type trackerController struct{ t *keyboard.Tracker }

func (c trackerController) ApplyFeedback(guess string, fb []string) {
	c.t.Apply(guess, keyboard.ParseFeedback(fb))
}
func (c trackerController) Reset()               { c.t.Reset() }
func (c trackerController) Activate(string) bool { return false }

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "events: [", "parse"},
		{"empty", "layout: qwerty\n", "no events"},
		{"bad layout", "layout: dvorak\nevents:\n  - reset: true\n", "unknown layout"},
		{"reset with guess", "events:\n  - reset: true\n    guess: crane\n", "cannot carry a guess"},
		{"missing guess", "events:\n  - feedback: [absent]\n", "missing guess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yaml")
	if err := os.WriteFile(path, []byte(sample), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load() error = %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("events: []\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); !errors.Is(err, ErrNoEvents) {
		t.Errorf("Load(empty) error = %v, want ErrNoEvents", err)
	}
}
