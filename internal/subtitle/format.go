package subtitle

import (
	"fmt"
	"strings"
	"time"
)

// ToSRT renders cues as SubRip text, one block per cue followed by a blank
// line.
func ToSRT(cues []Cue) string {
	var b strings.Builder
	for _, c := range cues {
		fmt.Fprintf(&b, "%d\n", c.Index)
		fmt.Fprintf(&b, "%s --> %s\n", FormatTimestamp(c.Start), FormatTimestamp(c.End))
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(c.Text))
	}
	return b.String()
}

// ToPlainText renders one line of trimmed cue text per cue. Multi-line cue
// text is joined with spaces.
func ToPlainText(cues []Cue) string {
	var b strings.Builder
	for _, c := range cues {
		b.WriteString(strings.ReplaceAll(strings.TrimSpace(c.Text), "\n", " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatTimestamp formats d as HH:MM:SS,mmm. Hours wrap at 24 and
// milliseconds are truncated.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours()) % 24
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
