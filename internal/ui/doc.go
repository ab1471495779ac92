// Package ui provides terminal rendering for zooskeys.
//
// This package uses Lipgloss (and Bubbles' progress bar) to draw the
// on-screen keyboard and the "run once and exit" output of the replay and
// score commands. The interactive game in package tui embeds the same
// components.
//
// # Components
//
//   - KeyboardSurface: implements keyboard.Surface and draws letter keys
//     with their five position indicators
//   - Header: command banner showing operation name and parameters
//   - Result: round outcome boxes (won, lost, error)
//   - AttemptsBar: progress bar of guesses used
//   - Printer: writes all of the above to an io.Writer
//
// # Key Anatomy
//
// Each letter key is two lines tall. The top line holds the position
// indicators 1-5; the bottom line holds the letter followed by any
// emphasized positions:
//
//	·2··     12345
//	 E 5      Z
//
// Hidden indicators are drawn as blanks so a key with a confirmed correct
// position shows only that position.
//
// # Logging Integration
//
// Logging is controlled via the ZOOSKEYS_LOG_LEVEL environment variable.
// When unset or empty, zap logging is silent so that the curated output is
// displayed cleanly.
package ui
