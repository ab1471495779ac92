package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/zooskeys/internal/ui"
)

// AppName is shown in the title bar
const AppName = "ZOOSKEYS"

var (
	// TitleStyle is for the title bar
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// MessageStyle is for the status line under the board
	MessageStyle = lipgloss.NewStyle().
			Foreground(ui.WarningColor).
			Height(1).
			MarginBottom(1)

	// HelpStyle is for the key help footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Padding(1, 0)
)
