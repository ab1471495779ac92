package keyboard

import (
	"unicode"
)

// Tracker owns the feedback state for every alphabet letter.
type Tracker struct {
	slots   int
	entries map[rune]*Entry
}

// NewTracker creates a tracker with every letter unset.
// Only the layout's slot count is used; the alphabet is always A-Z.
func NewTracker(layout Layout) *Tracker {
	t := &Tracker{
		slots:   layout.slots(),
		entries: make(map[rune]*Entry, len(Alphabet)),
	}
	for _, r := range Alphabet {
		t.entries[r] = &Entry{Letter: r}
	}
	return t
}

// Slots returns the number of positions tracked per letter
func (t *Tracker) Slots() int {
	return t.slots
}

// Apply merges one guess's feedback into the tracker and returns the
// distinct letters it touched, in order of first appearance.
//
// Indices without a usable color (feedback too short, ColorUnknown) and
// characters outside the alphabet are skipped. Positions beyond the slot
// count still contribute to the letter status but are not recorded.
func (t *Tracker) Apply(guess string, feedback []Color) []rune {
	var touched []rune
	seen := make(map[rune]bool)

	for i, ch := range []rune(guess) {
		letter := unicode.ToUpper(ch)
		entry, ok := t.entries[letter]
		if !ok {
			continue
		}
		if i >= len(feedback) {
			break
		}
		if !t.merge(entry, i+1, feedback[i]) {
			continue
		}
		if !seen[letter] {
			seen[letter] = true
			touched = append(touched, letter)
		}
	}
	return touched
}

// merge applies a single color at a position. Returns false when the color
// is not recognized and nothing was considered.
func (t *Tracker) merge(e *Entry, pos int, c Color) bool {
	recordable := pos <= t.slots

	switch c {
	case ColorCorrect:
		e.Status = StatusCorrect
		if recordable {
			e.Correct = e.Correct.Add(pos)
			e.Present = e.Present.Remove(pos)
		}
	case ColorPresent:
		if e.Status != StatusCorrect {
			e.Status = StatusPresent
		}
		if recordable && !e.Correct.Has(pos) {
			e.Present = e.Present.Add(pos)
		}
	case ColorAbsent:
		if e.Status != StatusCorrect && e.Status != StatusPresent {
			e.Status = StatusAbsent
		}
	default:
		return false
	}
	return true
}

// Reset returns every letter to unset with empty position sets
func (t *Tracker) Reset() {
	for letter, e := range t.entries {
		*e = Entry{Letter: letter}
	}
}

// Entry returns a copy of the state for letter. Lowercase input is accepted.
func (t *Tracker) Entry(letter rune) (Entry, bool) {
	e, ok := t.entries[unicode.ToUpper(letter)]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Letters returns the tracked alphabet in order
func (t *Tracker) Letters() []rune {
	return []rune(Alphabet)
}

// Snapshot returns a copy of every entry keyed by letter
func (t *Tracker) Snapshot() map[rune]Entry {
	out := make(map[rune]Entry, len(t.entries))
	for letter, e := range t.entries {
		out[letter] = *e
	}
	return out
}
