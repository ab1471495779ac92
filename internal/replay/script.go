// Package replay loads scripted feedback events and applies them to a
// keyboard. Scripts are YAML:
//
//	layout: qwerty
//	events:
//	  - guess: crane
//	    feedback: [absent, absent, correct, absent, present]
//	  - reset: true
//	  - guess: towel
//	    feedback: [green, orange, gray, gray, gray]
//
// Feedback tokens are passed to the keyboard untouched, so malformed tokens
// are skipped there exactly as they would be for live input.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muurk/zooskeys/internal/keyboard"
)

// ErrNoEvents is returned for a script without events
var ErrNoEvents = errors.New("script has no events")

// Event is either a feedback event or a reset
type Event struct {
	Guess    string   `yaml:"guess,omitempty"`
	Feedback []string `yaml:"feedback,omitempty"`
	Reset    bool     `yaml:"reset,omitempty"`
}

// Script is a sequence of events, optionally pinned to a layout
type Script struct {
	Layout string  `yaml:"layout,omitempty"`
	Events []Event `yaml:"events"`
}

// Stats counts what a Run did
type Stats struct {
	Guesses int
	Resets  int
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and checks its shape. Each event must be either a
// reset or carry a guess; an event cannot be both.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(s.Events) == 0 {
		return nil, ErrNoEvents
	}
	if s.Layout != "" {
		if _, err := keyboard.LayoutByName(s.Layout); err != nil {
			return nil, err
		}
	}
	for i, e := range s.Events {
		switch {
		case e.Reset && e.Guess != "":
			return nil, fmt.Errorf("event %d: reset events cannot carry a guess", i+1)
		case !e.Reset && e.Guess == "":
			return nil, fmt.Errorf("event %d: missing guess", i+1)
		}
	}
	return &s, nil
}

// Run applies every event to ctrl in order
func (s *Script) Run(ctrl keyboard.Controller) Stats {
	var st Stats
	for _, e := range s.Events {
		if e.Reset {
			ctrl.Reset()
			st.Resets++
			continue
		}
		ctrl.ApplyFeedback(e.Guess, e.Feedback)
		st.Guesses++
	}
	return st
}
