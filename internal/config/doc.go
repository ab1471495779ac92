// Package config provides user configuration management for zooskeys.
//
// This package manages a YAML settings file holding gameplay preferences
// (keyboard layout, guesses per round, custom word list) and logging
// preferences. The file follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/zooskeys/config.yaml or $HOME/.config/zooskeys/config.yaml
//   - macOS: $HOME/.config/zooskeys/config.yaml
//   - Windows: %LOCALAPPDATA%\zooskeys\config.yaml
//
// A missing file is not an error; defaults are used instead.
//
// # Usage Example
//
//	settings, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	layout := settings.Layout()
//
// # File Format
//
//	version: 1
//	game:
//	  layout: qwerty
//	  max_guesses: 6
//	  show_help: true
//	logging:
//	  level: debug
//	  file: /tmp/zooskeys.log
//
// Writes are atomic (temp file + rename) and the file is created with
// user-only permissions.
package config
