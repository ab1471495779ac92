package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/zooskeys/internal/keyboard"
)

// surfaceKey is one key created through AddKey
type surfaceKey struct {
	spec  keyboard.KeySpec
	view  keyboard.KeyView
	drawn bool
}

// KeyboardSurface is a terminal implementation of keyboard.Surface.
// It stores the latest KeyView per key and renders on demand.
type KeyboardSurface struct {
	keys    []*surfaceKey
	byToken map[string]keyboard.Handle
	rows    int
}

// NewKeyboardSurface creates an empty surface
func NewKeyboardSurface() *KeyboardSurface {
	return &KeyboardSurface{
		byToken: make(map[string]keyboard.Handle),
	}
}

// AddKey implements keyboard.Surface
func (s *KeyboardSurface) AddKey(spec keyboard.KeySpec) keyboard.Handle {
	h := keyboard.Handle(len(s.keys))
	s.keys = append(s.keys, &surfaceKey{spec: spec})
	s.byToken[strings.ToUpper(spec.Token)] = h
	if spec.Row+1 > s.rows {
		s.rows = spec.Row + 1
	}
	return h
}

// Paint implements keyboard.Surface
func (s *KeyboardSurface) Paint(h keyboard.Handle, view keyboard.KeyView) {
	if h < 0 || int(h) >= len(s.keys) {
		return
	}
	k := s.keys[h]
	k.view = view
	k.drawn = true
}

// Press activates the key with the given token, as a click would.
// Returns false if the key does not exist or is not interactive.
func (s *KeyboardSurface) Press(token string) bool {
	h, ok := s.byToken[strings.ToUpper(token)]
	if !ok {
		return false
	}
	k := s.keys[h]
	if k.spec.Activate == nil {
		return false
	}
	k.spec.Activate()
	return true
}

// KeyView returns the last painted view for a token
func (s *KeyboardSurface) KeyView(token string) (keyboard.KeyView, bool) {
	h, ok := s.byToken[strings.ToUpper(token)]
	if !ok || !s.keys[h].drawn {
		return keyboard.KeyView{}, false
	}
	return s.keys[h].view, true
}

// Len returns the number of keys on the surface
func (s *KeyboardSurface) Len() int {
	return len(s.keys)
}

// View renders all keys row by row, rows centered on the widest one
func (s *KeyboardSurface) View() string {
	if len(s.keys) == 0 {
		return ""
	}

	rows := make([][]string, s.rows)
	for _, k := range s.keys {
		var cell string
		if k.spec.Special {
			cell = renderSpecialKey(k.spec.Label)
		} else {
			cell = renderKey(k.spec.Label, k.view)
		}
		rows[k.spec.Row] = append(rows[k.spec.Row], cell)
	}

	rendered := make([]string, 0, len(rows))
	for _, cells := range rows {
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rendered...)
}

// renderKey draws a letter key: indicator strip over letter and emphasized
// positions. view.Slots may be empty for a key that was never painted.
func renderKey(label string, view keyboard.KeyView) string {
	var strip, emphasized strings.Builder

	for _, slot := range view.Slots {
		digit := strconv.Itoa(slot.Position)
		switch {
		case slot.Hidden:
			strip.WriteString(" ")
		case slot.Emphasized:
			strip.WriteString(" ")
			emphasized.WriteString(SlotStyle(slot.Tone, true).Render(digit))
		case slot.Active:
			strip.WriteString(SlotStyle(slot.Tone, false).Render(digit))
		default:
			strip.WriteString(SlotInactiveStyle.Render(SlotInactiveMarker))
		}
	}

	letter := LetterStyle(view.Tone).Render(" " + label + " ")
	return KeyCellStyle.Render(strip.String() + "\n" + letter + emphasized.String())
}

func renderSpecialKey(label string) string {
	return SpecialKeyCellStyle.Render("\n" + SpecialKeyStyle.Render(" "+label+" "))
}
