package subtitle

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims leading separator", in: " Hello world.", want: "Hello world."},
		{name: "collapses inner whitespace", in: "a \t  b", want: "a b"},
		{name: "drops blank lines", in: "one\n\n\ntwo", want: "one\ntwo"},
		{name: "normalizes carriage returns", in: "one\r\ntwo\rthree", want: "one\ntwo\nthree"},
		{name: "drops control characters", in: "bell\x07 and\x00 nul", want: "bell and nul"},
		{name: "neutralizes arrows", in: "00:00:01,000 --> 00:00:02,000", want: "00:00:01,000 -> 00:00:02,000"},
		{name: "neutralizes long arrows", in: "a ---> b", want: "a -> b"},
		{name: "composes to NFC", in: "cafe\u0301", want: "caf\u00e9"},
		{name: "whitespace only becomes empty", in: " \n \t ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_NeverContainsBlankLine(t *testing.T) {
	got := Sanitize("\n\nx\n \n\ny\n\n")
	if strings.Contains(got, "\n\n") || strings.HasPrefix(got, "\n") || strings.HasSuffix(got, "\n") {
		t.Fatalf("blank line survived: %q", got)
	}
}
