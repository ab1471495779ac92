package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/zooskeys/internal/keyboard"
)

// Color palette
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - won, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content

	// Feedback colors
	CorrectColor = lipgloss.Color("#538D4E") // Green
	PresentColor = lipgloss.Color("#C9A227") // Orange/yellow
	AbsentColor  = lipgloss.Color("#3A3A3C") // Dark gray
	NeutralColor = lipgloss.Color("#818384") // Light gray
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
)

// Shared styles
var (
	// HeaderTitleStyle is for the main command title (e.g., "REPLAY")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "zooskeys replay")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Layout:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// SummaryLetterStyle is the letter column of the summary table
	SummaryLetterStyle = lipgloss.NewStyle().
				Bold(true).
				Width(3)

	// SummaryStatusStyle is the status column of the summary table
	SummaryStatusStyle = lipgloss.NewStyle().
				Width(9)
)

// Key styles
var (
	// KeyCellStyle wraps one key (both lines)
	KeyCellStyle = lipgloss.NewStyle().
			Width(KeyCellWidth).
			MarginRight(1)

	// SpecialKeyCellStyle wraps action keys such as backspace
	SpecialKeyCellStyle = lipgloss.NewStyle().
				Width(KeyCellWidth + 2).
				MarginRight(1)

	// SlotInactiveStyle is for indicators with no information yet
	SlotInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// SpecialKeyStyle is for the label of action keys
	SpecialKeyStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(NeutralColor).
			Bold(true)
)

// KeyCellWidth is the width of one letter key in columns
const KeyCellWidth = 5

// Markers
const (
	SlotInactiveMarker = "·"
	SuccessMarker      = "✓"
	FailureMarker      = "✗"
)

// ToneColor returns the palette color for a feedback tone
func ToneColor(t keyboard.Tone) lipgloss.Color {
	switch t {
	case keyboard.ToneCorrect:
		return CorrectColor
	case keyboard.TonePresent:
		return PresentColor
	case keyboard.ToneAbsent:
		return AbsentColor
	default:
		return NeutralColor
	}
}

// LetterStyle returns the style for a key label with the given tone
func LetterStyle(t keyboard.Tone) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(TextColor).
		Background(ToneColor(t)).
		Bold(true)
	if t == keyboard.ToneAbsent {
		style = style.Foreground(MutedColor)
	}
	return style
}

// SlotStyle returns the style for an active position indicator
func SlotStyle(t keyboard.Tone, emphasized bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(ToneColor(t))
	if t == keyboard.ToneAbsent {
		style = style.Foreground(NeutralColor).Faint(true)
	}
	if emphasized {
		style = style.Bold(true)
	}
	return style
}

// TileStyle returns the style for a board tile showing a scored letter
func TileStyle(c keyboard.Color) lipgloss.Style {
	var bg lipgloss.Color
	switch c {
	case keyboard.ColorCorrect:
		bg = CorrectColor
	case keyboard.ColorPresent:
		bg = PresentColor
	case keyboard.ColorAbsent:
		bg = AbsentColor
	default:
		bg = NeutralColor
	}
	return lipgloss.NewStyle().
		Foreground(TextColor).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// HeaderBorderStyle returns the border style for command headers
func HeaderBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2) // Account for border characters
}

// ResultBoxStyle returns the double border box used for round results
func ResultBoxStyle(width int, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 2)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}

// RenderTiles draws one board row. Letters without a color use the neutral
// tile.
func RenderTiles(letters []rune, colors []keyboard.Color) string {
	tiles := make([]string, len(letters))
	for i, r := range letters {
		c := keyboard.ColorUnknown
		if i < len(colors) {
			c = colors[i]
		}
		tiles[i] = TileStyle(c).Render(string(r))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
