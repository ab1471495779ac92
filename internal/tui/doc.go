// Package tui implements the interactive game screen.
//
// Built with Bubble Tea, the screen shows the board of scored guesses, the
// row being typed, a guesses-used bar and the on-screen keyboard. Typed
// letters and backspace are routed through the keyboard's activation
// callback, the same path a click on a key would take, so the keyboard is
// the single source of input.
//
// # Usage Example
//
//	m := tui.NewModel(tui.Options{Layout: keyboard.QWERTY(), ShowHelp: true})
//	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
//	    return err
//	}
//
// # Key Bindings
//
//   - a-z: type a letter
//   - backspace: delete a letter
//   - enter: submit the guess
//   - ctrl+n: start a new round (the keyboard is reset, not recreated)
//   - ?: toggle full help
//   - esc, ctrl+c: quit
//
// # Thread Safety
//
// Bubble Tea runs Update on a single goroutine, which is what the keyboard
// tracker expects.
package tui
