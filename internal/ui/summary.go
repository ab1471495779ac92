package ui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/muurk/zooskeys/internal/keyboard"
)

// FormatPositions renders a position set as prefix + comma list, e.g. "G1,3".
// Returns an empty string for an empty set.
func FormatPositions(prefix string, set keyboard.PositionSet) string {
	if set.Empty() {
		return ""
	}
	positions := set.Positions()
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return prefix + strings.Join(parts, ",")
}

// SummaryLines lists every letter with known feedback, best status first and
// alphabetical within a status.
func SummaryLines(t *keyboard.Tracker) []string {
	entries := make([]keyboard.Entry, 0, len(keyboard.Alphabet))
	for _, letter := range t.Letters() {
		e, _ := t.Entry(letter)
		if e.Status != keyboard.StatusUnset {
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Status > entries[j].Status
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		var sets []string
		if s := FormatPositions("G", e.Correct); s != "" {
			sets = append(sets, s)
		}
		if s := FormatPositions("O", e.Present); s != "" {
			sets = append(sets, s)
		}

		line := SummaryLetterStyle.Render(string(e.Letter)) +
			SummaryStatusStyle.Foreground(ToneColor(keyboard.Project(e, t.Slots()).Tone)).Render(e.Status.String())
		if len(sets) > 0 {
			line += " " + strings.Join(sets, " ")
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}
