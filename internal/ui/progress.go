package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// AttemptsBar renders how many of the allowed guesses have been used
func AttemptsBar(used, allowed, width int) string {
	if allowed <= 0 {
		return ""
	}
	if used > allowed {
		used = allowed
	}
	if used < 0 {
		used = 0
	}

	barWidth := width - 12 // room for the "n/m" counter
	if barWidth < 10 {
		barWidth = 10
	}

	bar := progress.New(
		progress.WithSolidFill(string(PrimaryColor)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)

	counter := lipgloss.NewStyle().
		Foreground(MutedColor).
		PaddingLeft(1).
		Render(fmt.Sprintf("%d/%d", used, allowed))

	return bar.ViewAs(float64(used)/float64(allowed)) + counter
}
