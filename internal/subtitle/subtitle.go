// Package subtitle turns timestamped recognizer words into SRT cues.
//
// Everything here is pure: no I/O, no logging, no shared state. The job
// runner feeds it one recognizer result at a time and hands the rendered
// text to the output store.
package subtitle

import "time"

const DefaultMaxChars = 40

// Word is one recognized token with offsets from the start of the audio.
type Word struct {
	Text  string
	Start time.Duration
	End   time.Duration
}

// Cue is one timed subtitle block.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}
