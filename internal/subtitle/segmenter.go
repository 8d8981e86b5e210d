package subtitle

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Segmenter groups words into cues. A zero MaxChars (or any non-positive
// value) disables the length rule, leaving punctuation as the only break.
type Segmenter struct {
	MaxChars int
	// FlushTrailing emits words left over after the last break as a final
	// cue instead of dropping them.
	FlushTrailing bool
}

// Segment breaks words into cues numbered from startIndex, dropping any
// trailing words that never reach a break.
func Segment(words []Word, startIndex, maxChars int) []Cue {
	return Segmenter{MaxChars: maxChars}.Segment(words, startIndex)
}

// Append segments words and appends the cues to seq, numbering them after
// the cues already in seq.
func (s Segmenter) Append(seq []Cue, words []Word) []Cue {
	return append(seq, s.Segment(words, len(seq)+1)...)
}

func (s Segmenter) Segment(words []Word, startIndex int) []Cue {
	var cues []Cue
	st := cueState{index: startIndex, atSentenceStart: true}
	for _, w := range words {
		if st.atSentenceStart {
			st.pendingStart = w.Start
		}
		st.charCount += utf8.RuneCountInString(w.Text)
		st.buffer.WriteString(" ")
		st.buffer.WriteString(strings.TrimSpace(w.Text))

		if !s.endsCue(w, &st) {
			st.atSentenceStart = false
			continue
		}
		cues = append(cues, st.emit(w.End))
	}
	if s.FlushTrailing && !st.atSentenceStart {
		cues = append(cues, st.emit(words[len(words)-1].End))
	}
	return cues
}

func (s Segmenter) endsCue(w Word, st *cueState) bool {
	if strings.ContainsAny(w.Text, ".!?") {
		return true
	}
	if s.MaxChars > 0 && st.charCount > s.MaxChars {
		return true
	}
	return strings.Contains(w.Text, ",") && !st.atSentenceStart
}

type cueState struct {
	index           int
	charCount       int
	buffer          strings.Builder
	atSentenceStart bool
	pendingStart    time.Duration
}

func (st *cueState) emit(end time.Duration) Cue {
	c := Cue{
		Index: st.index,
		Start: st.pendingStart,
		End:   end,
		Text:  Sanitize(st.buffer.String()),
	}
	st.index++
	st.charCount = 0
	st.buffer.Reset()
	st.atSentenceStart = true
	return c
}
