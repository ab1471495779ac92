// Package keyboard tracks per-letter feedback for a word-guessing game and
// projects it onto an on-screen keyboard.
//
// The package is split into three layers:
//
//   - Tracker: owns one Entry per alphabet letter and merges feedback
//     events (guess + per-position Color) into it.
//   - Project: a pure function from Entry to KeyView describing what a key
//     should look like. No rendering surface is needed to test it.
//   - Mount: binds a Tracker to a Surface, builds the letter → Handle map
//     once and repaints touched keys after every mutation.
//
// # Merge Rules
//
// Status priority is correct > present > absent > unset. A correct event
// always wins, a present event never downgrades correct, and an absent
// event only applies to letters with no better information:
//
//	t := keyboard.NewTracker(keyboard.QWERTY())
//	t.Apply("crane", keyboard.ParseFeedback([]string{
//	    "absent", "absent", "correct", "absent", "present",
//	}))
//	e, _ := t.Entry('A') // StatusCorrect, Correct = {3}
//
// A position is never in both Correct and Present for the same letter.
//
// # Error Handling
//
// Nothing here returns an error. Unknown color tokens, letters outside the
// alphabet and feedback slices of the wrong length are skipped element by
// element. Mounting on a nil Surface yields an inert Controller and logs a
// warning.
//
// # Thread Safety
//
// Tracker and Keyboard are not safe for concurrent use. They are designed to
// be driven from a single UI goroutine such as a Bubble Tea Update loop.
package keyboard
