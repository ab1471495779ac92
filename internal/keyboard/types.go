package keyboard

import (
	"fmt"
	"math/bits"
	"strings"
)

// Status is the coarse per-letter classification.
// Values are ordered by priority so a higher value always wins a merge.
type Status uint8

const (
	StatusUnset Status = iota
	StatusAbsent
	StatusPresent
	StatusCorrect
)

// String returns the lowercase name of the status
func (s Status) String() string {
	switch s {
	case StatusUnset:
		return "unset"
	case StatusAbsent:
		return "absent"
	case StatusPresent:
		return "present"
	case StatusCorrect:
		return "correct"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Color is the per-position feedback token of a guess.
// The zero value is ColorUnknown, which the tracker ignores.
type Color uint8

const (
	ColorUnknown Color = iota
	ColorAbsent
	ColorPresent
	ColorCorrect
)

// String returns the canonical token for the color
func (c Color) String() string {
	switch c {
	case ColorAbsent:
		return "absent"
	case ColorPresent:
		return "present"
	case ColorCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// colorTokens maps accepted feedback tokens to colors. The green/orange/gray
// names are the ones used by the web keyboard this package replaces.
var colorTokens = map[string]Color{
	"correct": ColorCorrect,
	"present": ColorPresent,
	"absent":  ColorAbsent,
	"green":   ColorCorrect,
	"orange":  ColorPresent,
	"gray":    ColorAbsent,
	"grey":    ColorAbsent,
}

// ParseColor converts a feedback token into a Color.
// Matching is case-insensitive. Returns false for unrecognized tokens.
func ParseColor(token string) (Color, bool) {
	c, ok := colorTokens[strings.ToLower(strings.TrimSpace(token))]
	return c, ok
}

// ParseFeedback converts a slice of tokens into colors. Unrecognized tokens
// become ColorUnknown so positional alignment with the guess is preserved.
func ParseFeedback(tokens []string) []Color {
	colors := make([]Color, len(tokens))
	for i, token := range tokens {
		if c, ok := ParseColor(token); ok {
			colors[i] = c
		}
	}
	return colors
}

// MaxSlots is the largest number of positions a PositionSet can hold.
const MaxSlots = 8

// PositionSet is a set of 1-based positions stored as a bitmask.
// Bit 0 is position 1.
type PositionSet uint8

// Has reports whether pos is in the set
func (s PositionSet) Has(pos int) bool {
	if pos < 1 || pos > MaxSlots {
		return false
	}
	return s&(1<<(pos-1)) != 0
}

// Add returns the set with pos included. Out of range positions are ignored.
func (s PositionSet) Add(pos int) PositionSet {
	if pos < 1 || pos > MaxSlots {
		return s
	}
	return s | 1<<(pos-1)
}

// Remove returns the set with pos excluded
func (s PositionSet) Remove(pos int) PositionSet {
	if pos < 1 || pos > MaxSlots {
		return s
	}
	return s &^ (1 << (pos - 1))
}

// Len returns the number of positions in the set
func (s PositionSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Empty reports whether the set has no positions
func (s PositionSet) Empty() bool {
	return s == 0
}

// Positions returns the members in ascending order
func (s PositionSet) Positions() []int {
	out := make([]int, 0, s.Len())
	for pos := 1; pos <= MaxSlots; pos++ {
		if s.Has(pos) {
			out = append(out, pos)
		}
	}
	return out
}

// Entry is the accumulated feedback for one letter.
// Entries are values; the tracker hands out copies.
type Entry struct {
	Letter  rune
	Status  Status
	Correct PositionSet // positions confirmed in the exact slot
	Present PositionSet // positions where the letter exists elsewhere
}
