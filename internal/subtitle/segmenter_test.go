package subtitle

import (
	"testing"
	"time"
)

func words(texts ...string) []Word {
	out := make([]Word, 0, len(texts))
	for i, text := range texts {
		start := time.Duration(i) * time.Second
		out = append(out, Word{Text: text, Start: start, End: start + 800*time.Millisecond})
	}
	return out
}

func TestSegment_CharacterLimitBreaksOnCrossingWord(t *testing.T) {
	cues := Segment(words("hello", "world", "this"), 1, 10)

	if len(cues) != 1 {
		t.Fatalf("expected one cue, got %d: %+v", len(cues), cues)
	}
	if cues[0].Text != "hello world this" {
		t.Fatalf("unexpected text: %q", cues[0].Text)
	}
	if cues[0].Start != 0 || cues[0].End != 2*time.Second+800*time.Millisecond {
		t.Fatalf("unexpected timing: %s --> %s", cues[0].Start, cues[0].End)
	}
}

func TestSegment_ExactLimitDoesNotBreak(t *testing.T) {
	cues := Segment(words("hello", "world"), 1, 10)
	if len(cues) != 0 {
		t.Fatalf("expected trailing words to be dropped, got %+v", cues)
	}
}

func TestSegment_PunctuationBreak(t *testing.T) {
	cues := Segment(words("Hello", "world."), 1, 40)

	if len(cues) != 1 {
		t.Fatalf("expected one cue, got %d", len(cues))
	}
	if cues[0].Text != "Hello world." {
		t.Fatalf("unexpected text: %q", cues[0].Text)
	}
	if cues[0].End != time.Second+800*time.Millisecond {
		t.Fatalf("cue should end at the punctuated word, got %s", cues[0].End)
	}
}

func TestSegment_TerminatorsAnywhereInWord(t *testing.T) {
	for _, text := range []string{"wait!", "why?", "e.g", "3.5"} {
		cues := Segment(words("so", text, "after"), 1, 40)
		if len(cues) != 1 || cues[0].Text != "so "+text {
			t.Fatalf("%q: unexpected cues %+v", text, cues)
		}
	}
}

func TestSegment_CommaOnFirstWordDoesNotBreak(t *testing.T) {
	cues := Segment(words("First,", "second"), 1, 40)
	if len(cues) != 0 {
		t.Fatalf("expected no cues, got %+v", cues)
	}
}

func TestSegment_CommaAfterFirstWordBreaks(t *testing.T) {
	cues := Segment(words("Well", "then,", "we", "go."), 1, 40)

	if len(cues) != 2 {
		t.Fatalf("expected two cues, got %+v", cues)
	}
	if cues[0].Text != "Well then," || cues[1].Text != "we go." {
		t.Fatalf("unexpected texts: %q, %q", cues[0].Text, cues[1].Text)
	}
	if cues[1].Start != 2*time.Second {
		t.Fatalf("second cue should start at its first word, got %s", cues[1].Start)
	}
}

func TestSegment_SingleLongWordIsOwnCue(t *testing.T) {
	cues := Segment(words("supercalifragilistic", "next"), 1, 10)
	if len(cues) != 1 || cues[0].Text != "supercalifragilistic" {
		t.Fatalf("unexpected cues: %+v", cues)
	}
}

func TestSegment_CountsRunesNotBytes(t *testing.T) {
	// Five runes each, fifteen bytes each.
	cues := Segment(words("こんにちは", "さようなら"), 1, 9)
	if len(cues) != 1 {
		t.Fatalf("expected break on second word, got %+v", cues)
	}
	cues = Segment(words("こんにちは", "さようなら"), 1, 10)
	if len(cues) != 0 {
		t.Fatalf("ten runes must not exceed a limit of ten, got %+v", cues)
	}
}

func TestSegment_UntrimmedLengthCountsButTextIsTrimmed(t *testing.T) {
	cues := Segment([]Word{
		{Text: "  abc  ", Start: 0, End: time.Second},
		{Text: "de", Start: time.Second, End: 2 * time.Second},
	}, 1, 8)
	if len(cues) != 1 || cues[0].Text != "abc de" {
		t.Fatalf("unexpected cues: %+v", cues)
	}
}

func TestSegment_IndicesAreContiguousFromStart(t *testing.T) {
	cues := Segment(words("One.", "Two.", "Three."), 7, 40)
	for i, c := range cues {
		if c.Index != 7+i {
			t.Fatalf("cue %d has index %d", i, c.Index)
		}
		if c.Start > c.End {
			t.Fatalf("cue %d starts after it ends", c.Index)
		}
		if i > 0 && c.Start < cues[i-1].End {
			t.Fatalf("cue %d overlaps previous cue", c.Index)
		}
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	if cues := Segment(nil, 1, 40); len(cues) != 0 {
		t.Fatalf("expected no cues, got %+v", cues)
	}
}

func TestSegment_NonPositiveMaxCharsIsPunctuationOnly(t *testing.T) {
	for _, maxChars := range []int{0, -5} {
		cues := Segment(words("a", "long", "run", "of", "words", "ends."), 1, maxChars)
		if len(cues) != 1 || cues[0].Text != "a long run of words ends." {
			t.Fatalf("maxChars=%d: unexpected cues %+v", maxChars, cues)
		}
	}
}

func TestSegmenter_FlushTrailing(t *testing.T) {
	s := Segmenter{MaxChars: 40, FlushTrailing: true}
	cues := s.Segment(words("Done.", "left", "over"), 1)

	if len(cues) != 2 {
		t.Fatalf("expected two cues, got %+v", cues)
	}
	last := cues[1]
	if last.Index != 2 || last.Text != "left over" {
		t.Fatalf("unexpected trailing cue: %+v", last)
	}
	if last.Start != time.Second || last.End != 2*time.Second+800*time.Millisecond {
		t.Fatalf("unexpected trailing timing: %s --> %s", last.Start, last.End)
	}
}

func TestSegmenter_FlushTrailingNothingLeft(t *testing.T) {
	s := Segmenter{MaxChars: 40, FlushTrailing: true}
	if cues := s.Segment(words("Done."), 1); len(cues) != 1 {
		t.Fatalf("expected one cue, got %+v", cues)
	}
}

func TestSegmenter_AppendContinuesIndices(t *testing.T) {
	s := Segmenter{MaxChars: 40}
	seq := s.Append(nil, words("One.", "Two."))
	seq = s.Append(seq, words("Three.", "dropped"))

	if len(seq) != 3 {
		t.Fatalf("expected three cues, got %+v", seq)
	}
	for i, c := range seq {
		if c.Index != i+1 {
			t.Fatalf("cue %d has index %d", i, c.Index)
		}
	}
	if seq[2].Text != "Three." {
		t.Fatalf("unexpected text: %q", seq[2].Text)
	}
}
