package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/zooskeys/internal/keyboard"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestRenderKey(t *testing.T) {
	present := keyboard.Entry{Letter: 'E', Status: keyboard.StatusPresent}
	present.Present = present.Present.Add(2).Add(5)

	correct := keyboard.Entry{Letter: 'A', Status: keyboard.StatusCorrect}
	correct.Correct = correct.Correct.Add(3)
	correct.Present = correct.Present.Add(1)

	tests := []struct {
		name      string
		entry     keyboard.Entry
		wantStrip string
		wantLabel string
	}{
		{"unset", keyboard.Entry{Letter: 'Q'}, "·····", " Q"},
		{"absent", keyboard.Entry{Letter: 'Z', Status: keyboard.StatusAbsent}, "12345", " Z"},
		{"present", present, "·2·· ", " E 5"},
		{"correct suppresses others", correct, "     ", " A 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := plainLines(renderKey(string(tt.entry.Letter), keyboard.Project(tt.entry, 5)))
			if len(lines) != 2 {
				t.Fatalf("key has %d lines, want 2: %q", len(lines), lines)
			}
			if got := string([]rune(lines[0])[:5]); got != tt.wantStrip {
				t.Errorf("strip = %q, want %q", got, tt.wantStrip)
			}
			if got := strings.TrimRight(lines[1], " "); got != tt.wantLabel {
				t.Errorf("label line = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}

func TestKeyboardSurfaceWithMount(t *testing.T) {
	var typed []string
	s := NewKeyboardSurface()
	ctrl := keyboard.Mount(s, keyboard.QWERTY(), func(token string) { typed = append(typed, token) })

	if s.Len() != 27 {
		t.Fatalf("Len() = %d, want 27", s.Len())
	}

	ctrl.ApplyFeedback("CRANE", []string{"absent", "absent", "correct", "absent", "present"})

	v, ok := s.KeyView("a")
	if !ok {
		t.Fatal("KeyView(a) not painted")
	}
	if v.Tone != keyboard.ToneCorrect {
		t.Errorf("A tone = %v, want correct", v.Tone)
	}

	out := ansi.Strip(s.View())
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("View() has %d lines, want 6 (3 rows x 2)", len(lines))
	}
	if !strings.Contains(lines[3], " A 3") {
		t.Errorf("second row label line %q should contain %q", lines[3], " A 3")
	}
	if !strings.Contains(lines[5], keyboard.LabelBackspace) {
		t.Errorf("bottom row %q should contain the backspace key", lines[5])
	}

	if !s.Press("q") || !s.Press(keyboard.TokenBackspace) {
		t.Error("Press() should activate interactive keys")
	}
	if s.Press("Enter") {
		t.Error("Press(Enter) should be false for unknown key")
	}
	if got := strings.Join(typed, ","); got != "Q,Backspace" {
		t.Errorf("typed = %q, want Q,Backspace", got)
	}
}

func TestKeyboardSurfaceNonInteractive(t *testing.T) {
	s := NewKeyboardSurface()
	keyboard.Mount(s, keyboard.QWERTY(), nil)

	if s.Press("A") {
		t.Error("Press() should be false without an activation callback")
	}
	if _, ok := s.KeyView(keyboard.TokenBackspace); ok {
		t.Error("backspace should not exist without an activation callback")
	}
}

func TestEmptySurfaceView(t *testing.T) {
	if got := NewKeyboardSurface().View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}
