package keyboard

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/muurk/zooskeys/internal/logging"
)

// Handle identifies a key created on a Surface. Its meaning is private to the
// surface that issued it.
type Handle int

// KeySpec describes a key to create on a surface.
type KeySpec struct {
	Token    string // letter ("A") or special token ("Backspace")
	Label    string // text drawn on the key
	Row      int    // zero-based layout row
	Special  bool   // special keys carry no position indicators
	Activate func() // nil when the key is not interactive
}

// Surface is the rendering collaborator a keyboard paints into.
type Surface interface {
	AddKey(spec KeySpec) Handle
	Paint(h Handle, view KeyView)
}

// Controller is the handle returned by Mount.
type Controller interface {
	// ApplyFeedback merges one guess's feedback tokens and repaints the
	// touched keys.
	ApplyFeedback(guess string, feedback []string)
	// Reset clears all feedback and repaints every key.
	Reset()
	// Activate fires the activation callback for a key token. Returns false
	// when the token is unknown or the keyboard is not interactive.
	Activate(token string) bool
}

// Keyboard is a Tracker bound to a Surface.
type Keyboard struct {
	tracker    *Tracker
	surface    Surface
	handles    map[rune]Handle
	onActivate func(token string)
}

// Mount creates the keys for layout on surface and returns a controller for
// them. onActivate is optional; when set, every key is interactive and a
// trailing Backspace key is added.
//
// A nil surface yields an inert controller and a logged warning. An invalid
// layout falls back to QWERTY.
func Mount(surface Surface, layout Layout, onActivate func(token string)) Controller {
	if surface == nil {
		logging.Warn("Keyboard surface not found, keyboard is inert",
			zap.String("layout", layout.Name),
		)
		return inert{}
	}

	if err := layout.Validate(); err != nil {
		logging.Warn("Invalid keyboard layout, using qwerty", zap.Error(err))
		layout = QWERTY()
	}

	k := &Keyboard{
		tracker:    NewTracker(layout),
		surface:    surface,
		handles:    make(map[rune]Handle, len(Alphabet)),
		onActivate: onActivate,
	}

	for row, letters := range layout.Rows {
		for _, letter := range letters {
			spec := KeySpec{
				Token: string(letter),
				Label: string(letter),
				Row:   row,
			}
			if onActivate != nil {
				token := spec.Token
				spec.Activate = func() { k.Activate(token) }
			}
			k.handles[letter] = surface.AddKey(spec)
		}
	}

	if onActivate != nil {
		surface.AddKey(KeySpec{
			Token:    TokenBackspace,
			Label:    LabelBackspace,
			Row:      len(layout.Rows) - 1,
			Special:  true,
			Activate: func() { k.Activate(TokenBackspace) },
		})
	}

	k.Reset()
	logging.Debug("Keyboard mounted",
		zap.String("layout", layout.Name),
		zap.Int("keys", len(k.handles)),
		zap.Bool("interactive", onActivate != nil),
	)
	return k
}

// Tracker exposes the underlying state for read access
func (k *Keyboard) Tracker() *Tracker {
	return k.tracker
}

// ApplyFeedback implements Controller
func (k *Keyboard) ApplyFeedback(guess string, feedback []string) {
	colors := ParseFeedback(feedback)
	touched := k.tracker.Apply(guess, colors)

	logging.LogFeedback(guess, feedback, len(touched))
	for _, letter := range touched {
		k.paint(letter)
	}
}

// Reset implements Controller
func (k *Keyboard) Reset() {
	k.tracker.Reset()
	for _, letter := range k.tracker.Letters() {
		k.paint(letter)
	}
	logging.LogReset(len(k.handles))
}

// Activate implements Controller
func (k *Keyboard) Activate(token string) bool {
	if k.onActivate == nil {
		return false
	}

	if strings.EqualFold(token, TokenBackspace) {
		logging.LogActivation(TokenBackspace)
		k.onActivate(TokenBackspace)
		return true
	}

	if utf8.RuneCountInString(token) != 1 {
		return false
	}
	letter, _ := utf8.DecodeRuneInString(token)
	letter = unicode.ToUpper(letter)
	if _, ok := k.handles[letter]; !ok {
		return false
	}

	logging.LogActivation(string(letter))
	k.onActivate(string(letter))
	return true
}

func (k *Keyboard) paint(letter rune) {
	h, ok := k.handles[letter]
	if !ok {
		return
	}
	e, _ := k.tracker.Entry(letter)
	k.surface.Paint(h, Project(e, k.tracker.Slots()))
}

// inert is returned when there is nothing to render into.
type inert struct{}

func (inert) ApplyFeedback(string, []string) {}
func (inert) Reset()                         {}
func (inert) Activate(string) bool           { return false }
