// Package logging provides structured logging for zooskeys.
//
// This package wraps a package-global zap logger with convenience functions
// and a few domain helpers for keyboard and game events.
//
// # Log Levels
//
//   - Debug: Keyboard internals (feedback merges, resets, key activations)
//   - Info: Game flow (rounds started, guesses scored)
//   - Warn: Degraded behaviour (missing surface, invalid layout)
//   - Error: Failures surfaced to the user
//
// # Configuration
//
// Logging is silent by default. Enable it with a level and, for the
// interactive game, a file to write to:
//
//	ZOOSKEYS_LOG_LEVEL=debug ZOOSKEYS_LOG_FILE=/tmp/zooskeys.log zooskeys
//
// Or from code:
//
//	if err := logging.Initialize("debug", "/tmp/zooskeys.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and
// SetLogger are not and should be called during startup only.
package logging
