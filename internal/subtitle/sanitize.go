package subtitle

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	srtArrow         = "-->"
	neutralizedArrow = "->"
)

// Sanitize makes text safe to embed as the text lines of an SRT block.
// The result never contains a blank line or a timestamp arrow and carries no
// leading or trailing whitespace. It may be empty.
func Sanitize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(stripControl(line)), " ")
		// "--->" becomes "-->" after one pass.
		for strings.Contains(line, srtArrow) {
			line = strings.ReplaceAll(line, srtArrow, neutralizedArrow)
		}
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func stripControl(line string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, line)
}
