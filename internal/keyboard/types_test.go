package keyboard

import (
	"reflect"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		token  string
		want   Color
		wantOK bool
	}{
		{"correct", ColorCorrect, true},
		{"present", ColorPresent, true},
		{"absent", ColorAbsent, true},
		{"green", ColorCorrect, true},
		{"orange", ColorPresent, true},
		{"gray", ColorAbsent, true},
		{"grey", ColorAbsent, true},
		{" CORRECT ", ColorCorrect, true},
		{"yellow", ColorUnknown, false},
		{"", ColorUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseColor(tt.token)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseColor(%q) = %v, %v, want %v, %v", tt.token, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseFeedbackKeepsAlignment(t *testing.T) {
	got := ParseFeedback([]string{"absent", "bogus", "correct"})
	want := []Color{ColorAbsent, ColorUnknown, ColorCorrect}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFeedback() = %v, want %v", got, want)
	}
}

func TestPositionSet(t *testing.T) {
	var s PositionSet
	if !s.Empty() {
		t.Fatal("zero PositionSet should be empty")
	}

	s = s.Add(3).Add(1).Add(5).Add(3)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if got := s.Positions(); !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Errorf("Positions() = %v, want [1 3 5]", got)
	}

	s = s.Remove(3)
	if s.Has(3) {
		t.Error("Has(3) after Remove(3)")
	}

	// out of range positions are ignored
	if s.Add(0) != s || s.Add(MaxSlots+1) != s || s.Remove(-1) != s {
		t.Error("out of range Add/Remove should not change the set")
	}
	if s.Has(0) || s.Has(MaxSlots+1) {
		t.Error("Has() should be false for out of range positions")
	}
}

func TestStatusOrdering(t *testing.T) {
	if !(StatusUnset < StatusAbsent && StatusAbsent < StatusPresent && StatusPresent < StatusCorrect) {
		t.Error("status values must be ordered by priority")
	}
	if StatusCorrect.String() != "correct" || StatusUnset.String() != "unset" {
		t.Errorf("unexpected status names %q %q", StatusCorrect, StatusUnset)
	}
}
