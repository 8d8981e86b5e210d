package subtitle

import (
	"strings"
	"testing"
	"time"
)

func sampleCues() []Cue {
	return []Cue{
		{Index: 1, Start: 0, End: 5*time.Second + 230*time.Millisecond, Text: "Hello, welcome to the meeting."},
		{Index: 2, Start: 5*time.Second + 500*time.Millisecond, End: 10*time.Second + 100*time.Millisecond, Text: "Let's discuss the agenda."},
	}
}

func TestToSRT(t *testing.T) {
	got := ToSRT(sampleCues())
	want := "1\n00:00:00,000 --> 00:00:05,230\nHello, welcome to the meeting.\n\n" +
		"2\n00:00:05,500 --> 00:00:10,100\nLet's discuss the agenda.\n\n"
	if got != want {
		t.Fatalf("unexpected srt:\n%s", got)
	}
}

func TestToSRT_EmptyTextKeepsBlock(t *testing.T) {
	got := ToSRT([]Cue{{Index: 3, Start: time.Second, End: 2 * time.Second, Text: ""}})
	if got != "3\n00:00:01,000 --> 00:00:02,000\n\n\n" {
		t.Fatalf("unexpected srt: %q", got)
	}
}

func TestToPlainText(t *testing.T) {
	cues := sampleCues()
	cues[0].Text = "  padded  "
	got := ToPlainText(cues)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != len(cues) {
		t.Fatalf("expected %d lines, got %d: %q", len(cues), len(lines), got)
	}
	if lines[0] != "padded" || lines[1] != "Let's discuss the agenda." {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestToPlainText_MultiLineCueStaysOnOneLine(t *testing.T) {
	got := ToPlainText([]Cue{{Index: 1, Text: "one\ntwo"}})
	if got != "one two\n" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestEmptyCuesRenderEmpty(t *testing.T) {
	if ToSRT(nil) != "" || ToPlainText(nil) != "" {
		t.Fatal("expected empty output for no cues")
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "00:00:00,000"},
		{in: 1500 * time.Microsecond, want: "00:00:00,001"},
		{in: 999999 * time.Microsecond, want: "00:00:00,999"},
		{in: time.Hour + 2*time.Minute + 3*time.Second + 45*time.Millisecond, want: "01:02:03,045"},
		{in: 25*time.Hour + time.Second, want: "01:00:01,000"},
		{in: -time.Second, want: "00:00:00,000"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Fatalf("FormatTimestamp(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
