package transcriber

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	speechpb "cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/foxseedlab/speech2srt/internal/transcriber"
	"google.golang.org/protobuf/encoding/protojson"
)

// FileTranscriber replays a BatchRecognizeResults JSON document saved by a
// Cloud Storage output config. The request's AudioURI is the local path of
// that document.
type FileTranscriber struct{}

func NewFileTranscriber() transcriber.Transcriber {
	return &FileTranscriber{}
}

func (t *FileTranscriber) Recognize(ctx context.Context, req transcriber.RecognizeRequest) ([]transcriber.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(req.AudioURI)
	if err != nil {
		return nil, fmt.Errorf("read recognizer results: %w", err)
	}
	results, err := decodeBatchResults(data)
	if err != nil {
		return nil, fmt.Errorf("decode recognizer results %s: %w", req.AudioURI, err)
	}
	slog.Debug("loaded saved recognizer results", "path", req.AudioURI, "results", len(results))
	return results, nil
}

func decodeBatchResults(data []byte) ([]transcriber.Result, error) {
	var doc speechpb.BatchRecognizeResults
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return resultsFromProto(doc.GetResults()), nil
}
