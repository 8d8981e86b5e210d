package job

import (
	"fmt"

	"github.com/foxseedlab/speech2srt/internal/subtitle"
	"github.com/foxseedlab/speech2srt/internal/transcriber"
)

const (
	srtContentType = "application/x-subrip; charset=utf-8"
	txtContentType = "text/plain; charset=utf-8"
)

type Outputs struct {
	Cues []subtitle.Cue
	SRT  []byte
	TXT  []byte
}

// BuildOutputs segments every recognizer result in order, numbering cues
// continuously across results, and renders both output documents.
func BuildOutputs(results []transcriber.Result, seg subtitle.Segmenter) (Outputs, error) {
	var cues []subtitle.Cue
	for i, r := range results {
		if err := subtitle.ValidateWords(r.Words); err != nil {
			return Outputs{}, fmt.Errorf("result %d: %w", i, err)
		}
		cues = seg.Append(cues, r.Words)
	}
	return Outputs{
		Cues: cues,
		SRT:  []byte(subtitle.ToSRT(cues)),
		TXT:  []byte(subtitle.ToPlainText(cues)),
	}, nil
}
