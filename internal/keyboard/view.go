package keyboard

// Tone is the color class a key or slot is drawn with
type Tone uint8

const (
	ToneNeutral Tone = iota
	ToneAbsent
	TonePresent
	ToneCorrect
)

// String returns the tone name
func (t Tone) String() string {
	switch t {
	case ToneAbsent:
		return "absent"
	case TonePresent:
		return "present"
	case ToneCorrect:
		return "correct"
	default:
		return "neutral"
	}
}

// SlotView is the display state of one position indicator on a key.
type SlotView struct {
	Position   int
	Tone       Tone
	Active     bool
	Emphasized bool
	Hidden     bool // zero visual weight
}

// KeyView is everything a surface needs to draw one letter key.
type KeyView struct {
	Letter rune
	Tone   Tone
	Slots  []SlotView
}

// ActiveSlots returns the positions whose indicator is active
func (v KeyView) ActiveSlots() []int {
	var out []int
	for _, s := range v.Slots {
		if s.Active {
			out = append(out, s.Position)
		}
	}
	return out
}

func statusTone(s Status) Tone {
	switch s {
	case StatusAbsent:
		return ToneAbsent
	case StatusPresent:
		return TonePresent
	case StatusCorrect:
		return ToneCorrect
	default:
		return ToneNeutral
	}
}

// Project computes the view of a key from its entry alone.
// Once any correct position is known, only correct slots are shown and every
// other slot is hidden. The last slot of a present letter is emphasized.
func Project(e Entry, slots int) KeyView {
	if slots < 1 || slots > MaxSlots {
		slots = DefaultSlots
	}

	v := KeyView{
		Letter: e.Letter,
		Tone:   statusTone(e.Status),
		Slots:  make([]SlotView, slots),
	}

	for i := range v.Slots {
		pos := i + 1
		s := SlotView{Position: pos}

		switch {
		case !e.Correct.Empty():
			if e.Correct.Has(pos) {
				s.Tone = ToneCorrect
				s.Active = true
				s.Emphasized = true
			} else {
				s.Hidden = true
			}
		case e.Present.Has(pos):
			s.Tone = TonePresent
			s.Active = true
			s.Emphasized = pos == slots
		case e.Status == StatusAbsent:
			s.Tone = ToneAbsent
			s.Active = true
		}

		v.Slots[i] = s
	}
	return v
}
