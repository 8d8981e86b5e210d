package transcriber

import (
	"time"

	speechpb "cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/foxseedlab/speech2srt/internal/subtitle"
	"github.com/foxseedlab/speech2srt/internal/transcriber"
	"google.golang.org/protobuf/types/known/durationpb"
)

// resultsFromProto keeps the first alternative of every result. Results
// without alternatives are skipped.
func resultsFromProto(results []*speechpb.SpeechRecognitionResult) []transcriber.Result {
	out := make([]transcriber.Result, 0, len(results))
	for _, r := range results {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		infos := alts[0].GetWords()
		words := make([]subtitle.Word, 0, len(infos))
		for _, w := range infos {
			words = append(words, subtitle.Word{
				Text:  w.GetWord(),
				Start: offsetToDuration(w.GetStartOffset()),
				End:   offsetToDuration(w.GetEndOffset()),
			})
		}
		out = append(out, transcriber.Result{Words: words})
	}
	return out
}

func offsetToDuration(d *durationpb.Duration) time.Duration {
	return d.AsDuration().Truncate(time.Millisecond)
}
