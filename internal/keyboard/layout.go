package keyboard

import (
	"fmt"
	"strings"
)

// Alphabet is the fixed set of tracked letters.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultSlots is the number of positions in a guess.
const DefaultSlots = 5

// Special key tokens passed to activation callbacks
const (
	TokenBackspace = "Backspace"
	LabelBackspace = "⌫"
)

// Layout describes how letter keys are arranged on screen.
// Layouts are plain values; the constructors below return fresh copies so
// callers cannot mutate shared configuration.
type Layout struct {
	Name  string
	Rows  [][]rune
	Slots int
}

// QWERTY returns the standard three row keyboard ordering
func QWERTY() Layout {
	return newLayout("qwerty", "QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM")
}

// Alphabetical returns the alphabet split over three rows
func Alphabetical() Layout {
	return newLayout("alphabetical", "ABCDEFGHIJ", "KLMNOPQRS", "TUVWXYZ")
}

func newLayout(name string, rows ...string) Layout {
	l := Layout{Name: name, Slots: DefaultSlots}
	for _, row := range rows {
		l.Rows = append(l.Rows, []rune(row))
	}
	return l
}

// LayoutNames lists the names accepted by LayoutByName
func LayoutNames() []string {
	return []string{"qwerty", "alphabetical"}
}

// LayoutByName returns a built-in layout. An empty name means QWERTY.
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "qwerty":
		return QWERTY(), nil
	case "alphabetical", "abc":
		return Alphabetical(), nil
	default:
		return Layout{}, fmt.Errorf("unknown layout %q (valid: %s)", name, strings.Join(LayoutNames(), ", "))
	}
}

// Validate checks that every alphabet letter appears exactly once and that
// the slot count is usable.
func (l Layout) Validate() error {
	if l.Slots < 1 || l.Slots > MaxSlots {
		return fmt.Errorf("layout %q: slots must be between 1 and %d, got %d", l.Name, MaxSlots, l.Slots)
	}

	seen := make(map[rune]bool, len(Alphabet))
	for _, row := range l.Rows {
		for _, r := range row {
			if !strings.ContainsRune(Alphabet, r) {
				return fmt.Errorf("layout %q: %q is not in the alphabet", l.Name, r)
			}
			if seen[r] {
				return fmt.Errorf("layout %q: %q appears more than once", l.Name, r)
			}
			seen[r] = true
		}
	}

	var missing []string
	for _, r := range Alphabet {
		if !seen[r] {
			missing = append(missing, string(r))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("layout %q: missing letters %s", l.Name, strings.Join(missing, ""))
	}
	return nil
}

// slots returns the usable slot count, falling back to DefaultSlots
func (l Layout) slots() int {
	if l.Slots < 1 || l.Slots > MaxSlots {
		return DefaultSlots
	}
	return l.Slots
}
