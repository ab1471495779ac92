package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/zooskeys/internal/keyboard"
)

func TestFormatPositions(t *testing.T) {
	var set keyboard.PositionSet
	if got := FormatPositions("G", set); got != "" {
		t.Errorf("FormatPositions(empty) = %q, want empty", got)
	}

	set = set.Add(3).Add(1)
	if got := FormatPositions("G", set); got != "G1,3" {
		t.Errorf("FormatPositions() = %q, want G1,3", got)
	}
}

func TestSummaryLines(t *testing.T) {
	tr := keyboard.NewTracker(keyboard.QWERTY())
	tr.Apply("CRANE", keyboard.ParseFeedback([]string{"absent", "absent", "correct", "absent", "present"}))

	var got [][]string
	for _, line := range SummaryLines(tr) {
		got = append(got, strings.Fields(ansi.Strip(line)))
	}

	want := [][]string{
		{"A", "correct", "G3"},
		{"E", "present", "O5"},
		{"C", "absent"},
		{"N", "absent"},
		{"R", "absent"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SummaryLines() = %v, want %v", got, want)
	}
}

func TestSummaryLinesEmpty(t *testing.T) {
	if got := SummaryLines(keyboard.NewTracker(keyboard.QWERTY())); len(got) != 0 {
		t.Errorf("SummaryLines() = %v, want none", got)
	}
}

func TestRenderTiles(t *testing.T) {
	got := ansi.Strip(RenderTiles([]rune("CRANE"), []keyboard.Color{
		keyboard.ColorCorrect, keyboard.ColorAbsent,
	}))
	if !strings.Contains(got, " C ") || !strings.Contains(got, " E ") {
		t.Errorf("RenderTiles() = %q, want every letter padded", got)
	}
	if n := strings.Count(got, "\n"); n != 0 {
		t.Errorf("RenderTiles() spans %d lines, want one", n+1)
	}
}
