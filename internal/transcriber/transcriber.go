package transcriber

import (
	"context"

	"github.com/foxseedlab/speech2srt/internal/subtitle"
)

type RecognizeRequest struct {
	AudioURI        string
	LanguageCode    string
	SampleRateHertz int
	Encoding        string
}

// Result holds the words of the top-ranked alternative of one recognizer
// result, in spoken order.
type Result struct {
	Words []subtitle.Word
}

type Transcriber interface {
	Recognize(ctx context.Context, req RecognizeRequest) ([]Result, error)
}
