package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates how a round ended
type ResultType int

const (
	ResultWon ResultType = iota
	ResultLost
	ResultInProgress
	ResultFailure
)

// Result represents a round result box
type Result struct {
	Type    ResultType
	Title   string  // e.g., "Solved in 4"
	Details []Param // Key-value details to display, in order
	Error   error   // Error (for failure results)
	Width   int     // Terminal width
}

// NewResult creates a result box of the given type
func NewResult(typ ResultType, title string, details ...Param) *Result {
	return &Result{
		Type:    typ,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error) *Result {
	return &Result{
		Type:  ResultFailure,
		Title: title,
		Error: err,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var (
		marker, label string
		color         lipgloss.Color
	)
	switch r.Type {
	case ResultWon:
		marker, label, color = SuccessMarker, "SOLVED", SuccessColor
	case ResultLost:
		marker, label, color = FailureMarker, "OUT OF GUESSES", ErrorColor
	case ResultInProgress:
		marker, label, color = "…", "IN PROGRESS", WarningColor
	default:
		marker, label, color = FailureMarker, "FAILED", ErrorColor
	}

	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	lines := []string{"", titleStyle.Render("   " + marker + "  " + label + "  ─  " + r.Title), ""}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	for _, d := range r.Details {
		keyStyled := ResultKeyStyle.Render("   " + d.Key + ":")
		lines = append(lines, keyStyled+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	return ResultBoxStyle(width, color).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
