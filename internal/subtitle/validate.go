package subtitle

import (
	"errors"
	"fmt"
)

var ErrInvalidWord = errors.New("invalid word")

// InputError reports the first word that cannot produce a well-formed cue.
type InputError struct {
	Position int
	Word     Word
	Reason   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("word %d (%q): %s", e.Position, e.Word.Text, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidWord
}

// ValidateWords checks per-word offsets. Ordering across words is not
// checked; out-of-order input only yields odd cue timings. Empty input is
// valid.
func ValidateWords(words []Word) error {
	for i, w := range words {
		switch {
		case w.Start < 0 || w.End < 0:
			return &InputError{Position: i, Word: w, Reason: "negative offset"}
		case w.End < w.Start:
			return &InputError{Position: i, Word: w, Reason: fmt.Sprintf("end %s before start %s", w.End, w.Start)}
		}
	}
	return nil
}
